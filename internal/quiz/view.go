package quiz

// Mark is the display state of a question or of one of its options. It is
// derived from a snapshot on every call and never stored.
type Mark string

const (
	MarkUnanswered Mark = "unanswered"
	MarkAnswered   Mark = "answered" // picked, not yet revealed
	MarkCorrect    Mark = "correct"
	MarkIncorrect  Mark = "incorrect"
	MarkMissed     Mark = "missed" // the right option the learner did not pick
	MarkDimmed     Mark = "dimmed"
)

// QuestionMark projects a question's state.
func QuestionMark(q Question, answer int, answered, revealed bool) Mark {
	switch {
	case !answered:
		return MarkUnanswered
	case !revealed:
		return MarkAnswered
	case answer == q.Correct:
		return MarkCorrect
	default:
		return MarkIncorrect
	}
}

// OptionMark projects the state of option idx of q.
func OptionMark(q Question, idx, answer int, answered, revealed bool) Mark {
	selected := answered && answer == idx
	if !revealed {
		if selected {
			return MarkAnswered
		}
		return MarkUnanswered
	}
	switch {
	case selected && idx == q.Correct:
		return MarkCorrect
	case selected:
		return MarkIncorrect
	case idx == q.Correct:
		return MarkMissed
	default:
		return MarkDimmed
	}
}

type OptionView struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
	Mark  Mark   `json:"mark"`
}

// QuestionView hides the answer key and explanation until the reveal.
type QuestionView struct {
	Number        int          `json:"number"`
	ID            int          `json:"id"`
	Prompt        string       `json:"question"`
	ImageURL      string       `json:"image_url,omitempty"`
	Options       []OptionView `json:"options"`
	Mark          Mark         `json:"mark"`
	Selected      *int         `json:"selected,omitempty"`
	CorrectAnswer *int         `json:"correct_answer,omitempty"`
	Explanation   string       `json:"explanation,omitempty"`
}

type View struct {
	ID         string         `json:"id"`
	State      State          `json:"state"`
	Answered   int            `json:"answered"`
	Total      int            `json:"total"`
	CanSubmit  bool           `json:"can_submit"`
	Score      *int           `json:"score,omitempty"`
	Percentage *int           `json:"percentage,omitempty"`
	Passed     *bool          `json:"passed,omitempty"`
	Questions  []QuestionView `json:"questions"`
}

func (s Snapshot) View() View {
	revealed := s.State == StateRevealed
	v := View{
		ID:        s.ID,
		State:     s.State,
		Answered:  len(s.Answers),
		Total:     len(s.Questions),
		CanSubmit: s.State == StateAnswering && len(s.Answers) == len(s.Questions),
		Questions: make([]QuestionView, 0, len(s.Questions)),
	}
	if s.Result != nil {
		score, pct, passed := s.Result.Score, s.Result.Percentage(), s.Result.Passed()
		v.Score, v.Percentage, v.Passed = &score, &pct, &passed
	}
	for i, q := range s.Questions {
		answer, answered := s.Answers[q.ID]
		qv := QuestionView{
			Number:   i + 1,
			ID:       q.ID,
			Prompt:   q.Prompt,
			ImageURL: q.ImageURL,
			Mark:     QuestionMark(q, answer, answered, revealed),
			Options:  make([]OptionView, len(q.Options)),
		}
		for j, text := range q.Options {
			qv.Options[j] = OptionView{Index: j, Text: text, Mark: OptionMark(q, j, answer, answered, revealed)}
		}
		if answered {
			a := answer
			qv.Selected = &a
		}
		if revealed {
			c := q.Correct
			qv.CorrectAnswer = &c
			qv.Explanation = q.Explanation
		}
		v.Questions = append(v.Questions, qv)
	}
	return v
}
