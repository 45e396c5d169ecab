package dataset

// Dataset is one multiple-choice QA dataset: a closed candidate
// vocabulary shared by all instances, plus the instances themselves.
type Dataset struct {
	Globals   Globals    `json:"globals"`
	Instances []Instance `json:"instances"`
}

// Globals holds dataset-wide declarations; today that is only the
// candidate vocabulary.
type Globals struct {
	Candidates []Candidate `json:"candidates"`
}

// Candidate is one possible answer string from the closed vocabulary.
type Candidate struct {
	Text string `json:"text"`
}

// Instance is one training or evaluation example. The reader consumes
// only Questions[0]; further questions are carried but ignored.
type Instance struct {
	Questions []Question `json:"questions"`
}

// Question pairs a question text with its labeled answers. The reader
// consumes only Answers[0] as the positive answer.
type Question struct {
	Question string   `json:"question"`
	Answers  []Answer `json:"answers"`
}

// Answer is one labeled correct answer for a question.
type Answer struct {
	Text string `json:"text"`
}

// First returns the instance's first question. Valid only after the
// dataset passed Validate.
func (i Instance) First() Question {
	return i.Questions[0]
}
