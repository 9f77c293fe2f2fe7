// Seeds a starter bank of hotel-operations questions so a fresh
// environment has published content for quizzes and the daily challenge.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/model"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/repository"
)

const seedAuthor = "training-team"

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	mongoDB := os.Getenv("MONGO_DB")
	if mongoDB == "" {
		mongoDB = "quizbank"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		slog.Error("failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer client.Disconnect(ctx)

	repo := repository.NewQuestionRepo(client.Database(mongoDB))

	created := 0
	for _, q := range seedQuestions() {
		if err := repo.Create(ctx, q); err != nil {
			slog.Error("failed to insert question", "text", q.Text, "error", err)
			os.Exit(1)
		}
		created++
	}

	slog.Info("seeded question bank", "database", mongoDB, "questions", created)
}

// published stamps review metadata onto pre-approved seed content
func published(q *model.Question) *model.Question {
	now := time.Now().UTC()
	q.Status = model.StatusPublished
	q.CreatedBy = seedAuthor
	q.ReviewedBy = "system-seed"
	q.ReviewedAt = &now
	q.CreatedAt = now
	q.UpdatedAt = now
	return q
}

func draft(q *model.Question) *model.Question {
	now := time.Now().UTC()
	q.Status = model.StatusDraft
	q.CreatedBy = seedAuthor
	q.CreatedAt = now
	q.UpdatedAt = now
	return q
}

func opt(order int, text string, correct bool, feedback string) model.Option {
	return model.Option{
		ID:           uuid.NewString(),
		Text:         text,
		IsCorrect:    correct,
		Feedback:     feedback,
		DisplayOrder: order,
	}
}

func seedQuestions() []*model.Question {
	return []*model.Question{
		published(&model.Question{
			Text:       "A guest reports a smell of gas near their room. What is your first action?",
			Type:       model.QuestionTypeMCQ,
			Difficulty: model.DifficultyMedium,
			Options: []model.Option{
				opt(0, "Evacuate the immediate area and call the duty manager", true, ""),
				opt(1, "Open the room windows and continue your rounds", false, "Never ventilate alone; gas incidents require evacuation and escalation."),
				opt(2, "Investigate the source yourself before reporting", false, "Do not investigate suspected gas leaks; evacuate and escalate immediately."),
			},
			Explanation: "Suspected gas means evacuate first, escalate second. The duty manager coordinates with engineering and emergency services.",
			Hint:        "Think safety before diagnosis.",
			Tags:        []string{"safety", "emergency"},
		}),
		published(&model.Question{
			Text:       "Which of the following must be verified at check-in?",
			Type:       model.QuestionTypeMCQMulti,
			Difficulty: model.DifficultyEasy,
			Options: []model.Option{
				opt(0, "Photo identification", true, ""),
				opt(1, "Payment method", true, ""),
				opt(2, "Reservation name matches the ID", true, ""),
				opt(3, "The guest's preferred newspaper", false, "Preferences are recorded when offered, never required at check-in."),
			},
			Explanation: "ID, payment and name match are the three mandatory check-in verifications.",
			Tags:        []string{"front_desk"},
		}),
		published(&model.Question{
			Text:          "Fire doors may be propped open while a corridor is being serviced.",
			Type:          model.QuestionTypeTrueFalse,
			Difficulty:    model.DifficultyEasy,
			CorrectAnswer: "false",
			Explanation:   "Fire doors stay closed at all times. A propped fire door voids the floor's containment plan.",
			Tags:          []string{"safety", "housekeeping"},
		}),
		published(&model.Question{
			Text:          "Potentially hazardous food left in the danger zone for more than ___ hours must be discarded.",
			Type:          model.QuestionTypeFillBlank,
			Difficulty:    model.DifficultyMedium,
			CorrectAnswer: "two",
			Explanation:   "The two-hour rule applies between 5C and 60C; when in doubt, throw it out.",
			Hint:          "It is a single small number, written as a word.",
			Tags:          []string{"food_safety", "kitchen"},
		}),
		published(&model.Question{
			Text:          "The master key log must be signed every time a key is issued or returned.",
			Type:          model.QuestionTypeTrueFalse,
			Difficulty:    model.DifficultyEasy,
			CorrectAnswer: "true",
			Explanation:   "An unsigned master key movement is treated as a security incident.",
			Tags:          []string{"security", "front_desk"},
		}),
		published(&model.Question{
			Text:       "A guest calls at 2 AM about noise from a neighbouring room. What is the correct response?",
			Type:       model.QuestionTypeMCQ,
			Difficulty: model.DifficultyMedium,
			Options: []model.Option{
				opt(0, "Apologise, then contact the noisy room before offering a room move", true, ""),
				opt(1, "Ask the guest to speak to the neighbours directly", false, "Staff handle guest-to-guest issues; never send a guest to confront another."),
				opt(2, "Log the complaint for the morning shift to handle", false, "Night complaints are resolved at night; deferral loses the guest."),
			},
			Explanation: "Address the source first, then offer remedies. The complaining guest should never have to negotiate themselves.",
			Tags:        []string{"guest_relations", "night_shift"},
		}),
		published(&model.Question{
			Text:          "Unclaimed lost property is held for ___ days before disposal.",
			Type:          model.QuestionTypeFillBlank,
			Difficulty:    model.DifficultyHard,
			CorrectAnswer: "ninety",
			Explanation:   "Ninety days, logged in and out of the lost property register.",
			Tags:          []string{"housekeeping"},
		}),
		published(&model.Question{
			Text:          "A VIP guest arrives four hours before check-in and their room type is sold out until the afternoon. Describe how you would handle the situation.",
			Type:          model.QuestionTypeScenario,
			Difficulty:    model.DifficultyExpert,
			CorrectAnswer: "Acknowledge the guest by name, offer luggage storage and a lounge or spa option, check for an upgrade in a ready room, and commit to a specific ready time with a follow-up call.",
			Explanation:   "Scenario answers are reviewed by a trainer; the model answer covers acknowledgement, interim comfort, alternatives and a concrete commitment.",
			Tags:          []string{"front_desk", "vip"},
		}),
		draft(&model.Question{
			Text:       "Which chemical dilution is used for bathroom glass surfaces?",
			Type:       model.QuestionTypeMCQ,
			Difficulty: model.DifficultyMedium,
			Options: []model.Option{
				opt(0, "R3 at the dispenser's pre-set ratio", true, ""),
				opt(1, "Undiluted R3 for a faster clean", false, "Undiluted chemicals damage surfaces and violate the safety data sheet."),
			},
			Explanation: "Dispenser ratios are pre-calibrated; manual mixing is never permitted.",
			Tags:        []string{"housekeeping", "chemicals"},
		}),
	}
}
