package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/yanqian/faqbot/internal/domain/faq"
)

const ruleWidth = 50

var exitCommands = map[string]struct{}{
	"salir": {},
	"exit":  {},
	"quit":  {},
	"bye":   {},
}

// IsExitCommand reports whether input ends the chat session.
func IsExitCommand(input string) bool {
	_, ok := exitCommands[strings.ToLower(strings.TrimSpace(input))]
	return ok
}

// Texts holds the fixed strings of the chat session.
type Texts struct {
	Title          string
	Intro          []string
	UserLabel      string
	BotLabel       string
	EmptyInput     string
	CategoryPrompt string
	Farewell       string
	Unavailable    string
	Failure        string
}

// DefaultTexts are used for any empty field of Options.Texts.
var DefaultTexts = Texts{
	Title: "COLEGIO CALASANZ BUENAVISTA CHATBOT",
	Intro: []string{
		"Hi! I'm the virtual assistant of Colegio Calasanz Buenavista.",
		"I can help you with enrollment, admissions, location and more.",
		"Type 'help' to see the available categories.",
		"Type 'exit' to quit.",
	},
	UserLabel:      "You",
	BotLabel:       "Bot",
	EmptyInput:     "Please type your question.",
	CategoryPrompt: "Which category would you like to know more about?",
	Farewell:       "Goodbye! Thanks for using the Colegio Calasanz Buenavista chatbot.",
	Unavailable:    "The FAQ knowledge base could not be loaded. Exiting.",
	Failure:        "Sorry, something went wrong. Please try again.",
}

func (t Texts) withDefaults() Texts {
	d := DefaultTexts
	if t.Title == "" {
		t.Title = d.Title
	}
	if len(t.Intro) == 0 {
		t.Intro = d.Intro
	}
	if t.UserLabel == "" {
		t.UserLabel = d.UserLabel
	}
	if t.BotLabel == "" {
		t.BotLabel = d.BotLabel
	}
	if t.EmptyInput == "" {
		t.EmptyInput = d.EmptyInput
	}
	if t.CategoryPrompt == "" {
		t.CategoryPrompt = d.CategoryPrompt
	}
	if t.Farewell == "" {
		t.Farewell = d.Farewell
	}
	if t.Unavailable == "" {
		t.Unavailable = d.Unavailable
	}
	if t.Failure == "" {
		t.Failure = d.Failure
	}
	return t
}

// Options configures a Session.
type Options struct {
	Theme Theme
	Texts Texts
	// Available is false when the knowledge base is empty; the session then
	// prints the banner and a notice and returns.
	Available bool
}

// Session is a read-a-line chat loop around the FAQ service.
type Session struct {
	svc    faq.Service
	theme  Theme
	texts  Texts
	ready  bool
	in     io.Reader
	out    io.Writer
	logger *slog.Logger
}

// NewSession constructs a chat session reading from in and writing to out.
func NewSession(svc faq.Service, opts Options, in io.Reader, out io.Writer, logger *slog.Logger) *Session {
	return &Session{
		svc:    svc,
		theme:  opts.Theme,
		texts:  opts.Texts.withDefaults(),
		ready:  opts.Available,
		in:     in,
		out:    out,
		logger: logger.With("component", "terminal.session"),
	}
}

// Run prints the banner and answers one line at a time until an exit
// command, end of input or ctx cancellation.
func (s *Session) Run(ctx context.Context) error {
	s.printBanner()
	if !s.ready {
		s.println(s.theme.Notice(s.texts.Unavailable))
		return nil
	}

	done := make(chan struct{})
	defer close(done)
	lines, scanErr := scanLines(s.in, done)
	for {
		s.println("\n" + s.theme.Rule("-", ruleWidth))
		s.print(s.theme.UserLabel(s.texts.UserLabel+":") + " ")

		var line string
		select {
		case <-ctx.Done():
			s.println("")
			s.say(s.texts.Farewell)
			return nil
		case next, ok := <-lines:
			if !ok {
				s.println("")
				s.say(s.texts.Farewell)
				return <-scanErr
			}
			line = next
		}
		query := strings.TrimSpace(line)

		if IsExitCommand(query) {
			s.say(s.texts.Farewell)
			return nil
		}
		if query == "" {
			s.say(s.texts.EmptyInput)
			continue
		}

		resp, err := s.svc.Reply(ctx, faq.Request{Query: query})
		if err != nil {
			s.logger.Error("reply failed", "error", err)
			s.say(s.texts.Failure)
			continue
		}
		s.say(resp.Reply)
		if resp.Outcome == faq.OutcomeCategories {
			s.say(s.texts.CategoryPrompt)
		}
	}
}

// scanLines reads in on its own goroutine so a blocked read never holds up
// cancellation. lines is closed at end of input, after the scanner error has
// been sent. A read that is blocked when done closes stays blocked until in
// yields or is closed.
func scanLines(in io.Reader, done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		scanErr <- scanner.Err()
	}()
	return lines, scanErr
}

func (s *Session) printBanner() {
	rule := s.theme.Rule("=", ruleWidth)
	s.println(s.theme.Title(s.texts.Title))
	s.println(rule)
	for _, line := range s.texts.Intro {
		s.println(line)
	}
	s.println(rule)
}

func (s *Session) say(text string) {
	s.println(s.theme.BotLabel(s.texts.BotLabel+":") + " " + text)
}

func (s *Session) println(text string) {
	fmt.Fprintln(s.out, text)
}

func (s *Session) print(text string) {
	fmt.Fprint(s.out, text)
}

// RenderCategories renders a numbered category list under header.
func RenderCategories(theme Theme, header string, categories []faq.Category) string {
	var b strings.Builder
	b.WriteString(theme.Title(header))
	b.WriteString("\n")
	for i, c := range categories {
		fmt.Fprintf(&b, "%d. %s\n", i+1, c.DisplayName)
	}
	return b.String()
}
