package evaluation

type feedbackBand struct {
	min     int
	message string
}

// Bands are checked top-down; the first band whose lower bound is met wins.
var feedbackBands = []feedbackBand{
	{95, "Elite Dynasty Material! This team has the perfect blend of talent, chemistry, and balance - reminiscent of the '96 Bulls! 🏆👑"},
	{90, "Championship Caliber! Your team has the depth and versatility of the 2022 Warriors - true title contenders! 🏆"},
	{85, "Title Contender! This roster has excellent balance and could compete with any team in the league! 🌟"},
	{80, "Playoff Ready! Your team shows great potential with strong fundamentals and good chemistry! 💪"},
	{75, "Promising Core! With some development, this team could make some serious noise! 📈"},
	{70, "Solid Foundation! Your team has good pieces but might need more balance to compete at the highest level. 🔄"},
	{65, "Work in Progress! There's talent here, but the roster needs more cohesion and depth. 🛠️"},
}

const defaultFeedback = "Development Mode! Keep drafting - focus on team balance and complementary skillsets! 📚"

// FeedbackForScore maps a final score onto its qualitative message.
func FeedbackForScore(score int) string {
	for _, band := range feedbackBands {
		if score >= band.min {
			return band.message
		}
	}
	return defaultFeedback
}
