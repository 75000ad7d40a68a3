// Package testutils provides fakes for zile's interactive collaborators.
package testutils

import (
	"fmt"
	"sync"

	"zile/pkg/ziletypes"
)

// Answer is one scripted reply. Err, when set, is returned instead of the value.
type Answer struct {
	Text string
	Yes  bool
	Err  error
}

// Cancel is an answer that cancels the prompt.
var Cancel = Answer{Err: ziletypes.ErrCancelled}

// Text returns an answer typing s.
func Text(s string) Answer {
	return Answer{Text: s}
}

// Yes returns a yes/no answer.
func Yes(b bool) Answer {
	return Answer{Yes: b}
}

// Prompt records one prompt the code under test issued.
type Prompt struct {
	Kind       string
	Text       string
	Default    string
	Candidates []string
}

// MockPrompter implements ziletypes.Prompter from a queue of answers.
// Once the queue is empty every prompt is cancelled.
type MockPrompter struct {
	mu      sync.Mutex
	answers []Answer

	Prompts []Prompt
	Errors  []string
	Clears  int
}

// NewMockPrompter returns a prompter that replies with answers in order.
func NewMockPrompter(answers ...Answer) *MockPrompter {
	return &MockPrompter{answers: answers}
}

func (m *MockPrompter) next(p Prompt) Answer {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Prompts = append(m.Prompts, p)
	if len(m.answers) == 0 {
		return Cancel
	}
	a := m.answers[0]
	m.answers = m.answers[1:]
	return a
}

// Read implements ziletypes.Prompter.
func (m *MockPrompter) Read(prompt, def string) (string, error) {
	a := m.next(Prompt{Kind: "read", Text: prompt, Default: def})
	return a.Text, a.Err
}

// ReadCompletion implements ziletypes.Prompter.
func (m *MockPrompter) ReadCompletion(prompt string, candidates []string) (string, error) {
	a := m.next(Prompt{Kind: "completion", Text: prompt, Candidates: candidates})
	return a.Text, a.Err
}

// ReadBoolean implements ziletypes.Prompter.
func (m *MockPrompter) ReadBoolean(prompt string) (bool, error) {
	a := m.next(Prompt{Kind: "boolean", Text: prompt})
	return a.Yes, a.Err
}

// ReadColor implements ziletypes.Prompter. Scripted colors are not validated.
func (m *MockPrompter) ReadColor(prompt string) (string, error) {
	a := m.next(Prompt{Kind: "color", Text: prompt})
	return a.Text, a.Err
}

// Error implements ziletypes.Prompter.
func (m *MockPrompter) Error(format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Errors = append(m.Errors, fmt.Sprintf(format, args...))
}

// Clear implements ziletypes.Prompter.
func (m *MockPrompter) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Clears++
}

// Remaining returns the number of unused answers.
func (m *MockPrompter) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.answers)
}
