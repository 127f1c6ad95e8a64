package registry

import "example.com/signup/internal/domain"

// SeedActivities returns the fixed dataset the registry is initialized
// with at startup. Names are unique and never change after seeding.
func SeedActivities() []domain.Activity {
	return []domain.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		{
			Name:            "Basketball Team",
			Description:     "Join the team for practice and games",
			Schedule:        "Tuesdays and Thursdays, 4:30 PM - 6:00 PM",
			MaxParticipants: 15,
			Participants:    []string{},
		},
		{
			Name:            "Soccer Club",
			Description:     "Practice soccer skills and compete in matches",
			Schedule:        "Mondays and Wednesdays, 3:00 PM - 5:00 PM",
			MaxParticipants: 20,
			Participants:    []string{},
		},
		{
			Name:            "Art Club",
			Description:     "Explore various art techniques and create projects",
			Schedule:        "Fridays, 3:00 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{},
		},
		{
			Name:            "Drama Club",
			Description:     "Participate in theater productions and improv",
			Schedule:        "Tuesdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{},
		},
		{
			Name:            "Debate Team",
			Description:     "Engage in debates and improve public speaking skills",
			Schedule:        "Wednesdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 12,
			Participants:    []string{},
		},
		{
			Name:            "Science Club",
			Description:     "Conduct experiments and explore scientific concepts",
			Schedule:        "Thursdays, 3:00 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{},
		},
	}
}
