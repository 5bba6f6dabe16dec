package assistant

import "github.com/datagotchi/datagotchi/internal/language"

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	PetID   string        `json:"pet_id"`
	Message string        `json:"message"`
	History []ChatMessage `json:"history,omitempty"`
}

type ChatResponse struct {
	Response string   `json:"response"`
	Sources  []string `json:"sources,omitempty"`
}

type GenerateContentRequest struct {
	PetID       string `json:"pet_id"`
	ContentType string `json:"content_type"`
	Prompt      string `json:"prompt,omitempty"`
}

type GenerateContentResponse struct {
	Content string `json:"content"`
}

type RoundRequest struct {
	PetID string `json:"pet_id"`
	Count int    `json:"count,omitempty"`
}

type TriviaQuestion struct {
	Question      string   `json:"question" yaml:"question"`
	Options       []string `json:"options" yaml:"options"`
	CorrectAnswer int      `json:"correct_answer" yaml:"-"`
	Explanation   string   `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

type TriviaResponse struct {
	Questions []TriviaQuestion `json:"questions"`
}

type SentimentText struct {
	ID        string `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	Sentiment string `json:"sentiment,omitempty" yaml:"-"`
}

type SentimentResponse struct {
	Texts []SentimentText `json:"texts"`
}

type FlashcardsRequest struct {
	PetID      string              `json:"pet_id"`
	Language   string              `json:"language"`
	Count      int                 `json:"count,omitempty"`
	Level      int                 `json:"level"`
	Difficulty language.Difficulty `json:"difficulty"`
}

// WithProgress fills the personalization hints from the learner's progress.
func (r FlashcardsRequest) WithProgress(p *language.Progress) FlashcardsRequest {
	r.Level, r.Difficulty = p.Hints()
	return r
}

type Flashcard struct {
	Front   string `json:"front" yaml:"front"`
	Back    string `json:"back" yaml:"back"`
	Example string `json:"example,omitempty" yaml:"example,omitempty"`
}

type FlashcardsResponse struct {
	Flashcards []Flashcard `json:"flashcards"`
}

type Image struct {
	ID  string `json:"id" yaml:"id"`
	URL string `json:"url" yaml:"url"`
}

type ImageQualityRound struct {
	RoundID string  `json:"round_id" yaml:"round_id"`
	Prompt  string  `json:"prompt,omitempty" yaml:"prompt,omitempty"`
	Images  []Image `json:"images" yaml:"images"`
}

// CompleteSessionRequest reports a finished play-through to the backend.
type CompleteSessionRequest struct {
	WalletAddress string `json:"wallet_address"`
	PetID         string `json:"pet_id"`
	Score         int    `json:"score"`
	Total         int    `json:"total"`
	Language      string `json:"language,omitempty"`
}

type CompleteSessionResponse struct {
	Message  string `json:"message,omitempty" yaml:"message,omitempty"`
	Feedback string `json:"feedback,omitempty" yaml:"feedback,omitempty"`
}
