package matching

import "math"

// Score computes the fraction of job requirements present in the résumé
// skills, in [0, 1], rounded to two decimals. Comparison is case-insensitive
// and résumé-side duplicates are ignored. An empty requirement set scores
// exactly 0: there is nothing to match against.
func Score(resumeSkills, jobRequirements any) float64 {
	resume := Normalize(resumeSkills)
	job := Normalize(jobRequirements)

	if job.Len() == 0 {
		return 0
	}

	matched := 0
	for _, req := range job.Items() {
		if resume.Contains(req) {
			matched++
		}
	}

	return math.Round(float64(matched)/float64(job.Len())*100) / 100
}
