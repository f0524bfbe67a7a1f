package kernel

// MatchScore is the 0-100 weighted result of scoring a resume
// against a job specification
type MatchScore int

func (m MatchScore) Int() int { return int(m) }

// IsValid checks the score is within bounds
func (m MatchScore) IsValid() bool { return m >= 0 && m <= 100 }
