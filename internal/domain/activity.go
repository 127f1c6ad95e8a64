package domain

// Activity is a named extracurricular offering with a roster of
// participant emails. MaxParticipants is advisory: it is served to
// clients but never checked on signup.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}
