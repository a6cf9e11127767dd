package catalog

import "slices"

// InterestGroup is a themed set of interests offered to students.
type InterestGroup struct {
	Name      string   `json:"name"`
	Interests []string `json:"interests"`
}

var interestGroups = []InterestGroup{
	{Name: "Academic & Intellectual", Interests: []string{
		"Science & Research", "Technology & Innovation", "Mathematics", "History",
		"Philosophy", "Politics & Current Affairs", "Economics & Finance", "Language & Linguistics",
	}},
	{Name: "Creative & Artistic", Interests: []string{
		"Drawing & Painting", "Music (Listening / Playing)", "Writing & Storytelling", "Photography",
		"Acting & Theater", "Film & Video Editing", "Fashion & Design", "Crafts & DIY",
	}},
	{Name: "Career-Oriented / Professional", Interests: []string{
		"Business & Entrepreneurship", "Marketing & Advertising", "Engineering", "Medicine & Healthcare",
		"Law & Justice", "Education & Teaching", "Architecture", "Psychology", "Social Work", "Culinary Arts",
	}},
	{Name: "Physical & Outdoor", Interests: []string{
		"Sports & Fitness", "Hiking & Nature", "Dance", "Camping & Survival Skills",
		"Gardening", "Martial Arts", "Travel & Adventure",
	}},
	{Name: "Tech & Gaming", Interests: []string{
		"Programming / Coding", "Video Games", "Web Development", "Cybersecurity",
		"Robotics", "AI & Machine Learning", "Blockchain / Crypto",
	}},
	{Name: "Social & Community", Interests: []string{
		"Volunteering", "Activism & Advocacy", "Mentoring & Coaching", "Cultural Exchange", "Event Planning",
	}},
	{Name: "Lifestyle & Personal Growth", Interests: []string{
		"Meditation & Mindfulness", "Spirituality", "Reading", "Journaling",
		"Minimalism", "Personal Finance", "Self-Improvement",
	}},
	{Name: "Animals & Nature", Interests: []string{
		"Animal Care", "Wildlife Conservation", "Environmental Sustainability", "Bird Watching", "Marine Biology",
	}},
}

// InterestGroups returns the interest groups in display order.
func InterestGroups() []InterestGroup {
	out := make([]InterestGroup, len(interestGroups))
	for i, g := range interestGroups {
		out[i] = InterestGroup{Name: g.Name, Interests: slices.Clone(g.Interests)}
	}
	return out
}

// Interests returns every offered interest, flattened in display order.
func Interests() []string {
	var out []string
	for _, g := range interestGroups {
		out = append(out, g.Interests...)
	}
	return out
}
