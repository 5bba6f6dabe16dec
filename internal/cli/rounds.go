package cli

import (
	"context"
	"strings"

	"github.com/datagotchi/datagotchi/internal/assistant"
)

var sentimentLabels = []string{"positive", "negative", "neutral"}

type TriviaRound struct {
	cli       *GameCLI
	questions []assistant.TriviaQuestion
	next      int
	score     Score
}

func NewTriviaRound(cli *GameCLI, questions []assistant.TriviaQuestion) *TriviaRound {
	return &TriviaRound{cli: cli, questions: questions}
}

func (r *TriviaRound) Score() Score { return r.score }

func (r *TriviaRound) Session(ctx context.Context) error {
	if r.next >= len(r.questions) {
		return errEnd
	}
	q := r.questions[r.next]
	r.cli.printf("\n%s\n", r.cli.bold.Sprintf("Q%d. %s", r.next+1, q.Question))
	picked, err := r.cli.choose(q.Options)
	if err != nil {
		return err
	}
	r.next++
	r.score.Total++

	if picked == q.CorrectAnswer {
		r.score.Correct++
		r.cli.correct("Correct!")
	} else if q.CorrectAnswer >= 0 && q.CorrectAnswer < len(q.Options) {
		r.cli.wrong(`Wrong. The answer is "%s"`, q.Options[q.CorrectAnswer])
	} else {
		r.cli.wrong("Wrong.")
	}
	if q.Explanation != "" {
		r.cli.printf("   %s\n", r.cli.italic.Sprint(q.Explanation))
	}
	return nil
}

// SentimentRound asks for a label per text. Texts the backend sent without
// a reference label count as correct once labeled.
type SentimentRound struct {
	cli   *GameCLI
	texts []assistant.SentimentText
	next  int
	score Score
}

func NewSentimentRound(cli *GameCLI, texts []assistant.SentimentText) *SentimentRound {
	return &SentimentRound{cli: cli, texts: texts}
}

func (r *SentimentRound) Score() Score { return r.score }

func (r *SentimentRound) Session(ctx context.Context) error {
	if r.next >= len(r.texts) {
		return errEnd
	}
	text := r.texts[r.next]
	r.cli.printf("\n%s\n", r.cli.italic.Sprintf("%q", text.Text))
	picked, err := r.cli.choose(sentimentLabels)
	if err != nil {
		return err
	}
	r.next++
	r.score.Total++

	if text.Sentiment == "" || strings.EqualFold(text.Sentiment, sentimentLabels[picked]) {
		r.score.Correct++
		r.cli.correct("Labeled %s", sentimentLabels[picked])
	} else {
		r.cli.wrong("Most people said %s", text.Sentiment)
	}
	return nil
}

type FlashcardRound struct {
	cli   *GameCLI
	cards []assistant.Flashcard
	next  int
	score Score
}

func NewFlashcardRound(cli *GameCLI, cards []assistant.Flashcard) *FlashcardRound {
	return &FlashcardRound{cli: cli, cards: cards}
}

func (r *FlashcardRound) Score() Score { return r.score }

func (r *FlashcardRound) Session(ctx context.Context) error {
	if r.next >= len(r.cards) {
		return errEnd
	}
	card := r.cards[r.next]
	r.cli.printf("\n%s\n", r.cli.bold.Sprint(card.Front))
	answer, err := r.cli.ask("Meaning:")
	if err != nil {
		return err
	}
	r.next++
	r.score.Total++

	if answer != "" && strings.EqualFold(answer, strings.TrimSpace(card.Back)) {
		r.score.Correct++
		r.cli.correct(`It's correct. %s means "%s"`, r.cli.bold.Sprint(card.Front), r.cli.italic.Sprint(card.Back))
	} else {
		r.cli.wrong(`It's wrong. %s means "%s"`, r.cli.bold.Sprint(card.Front), r.cli.italic.Sprint(card.Back))
	}
	if card.Example != "" {
		r.cli.printf("   e.g. %s\n", card.Example)
	}
	return nil
}

// ImageQualityRound is a single vote for the best image.
type ImageQualityRound struct {
	// Choice is the id of the image voted for.
	Choice string

	cli   *GameCLI
	round assistant.ImageQualityRound
	voted bool
	score Score
}

func NewImageQualityRound(cli *GameCLI, round assistant.ImageQualityRound) *ImageQualityRound {
	return &ImageQualityRound{cli: cli, round: round}
}

func (r *ImageQualityRound) Score() Score { return r.score }

func (r *ImageQualityRound) Session(ctx context.Context) error {
	if r.voted || len(r.round.Images) == 0 {
		return errEnd
	}
	if r.round.Prompt != "" {
		r.cli.printf("\n%s\n", r.cli.bold.Sprint(r.round.Prompt))
	}
	options := make([]string, len(r.round.Images))
	for i, image := range r.round.Images {
		options[i] = image.URL
	}
	picked, err := r.cli.choose(options)
	if err != nil {
		return err
	}
	r.voted = true
	r.Choice = r.round.Images[picked].ID
	r.score = Score{Correct: 1, Total: 1}
	r.cli.correct("Vote recorded")
	return nil
}
