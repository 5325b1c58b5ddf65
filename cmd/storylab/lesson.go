package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/storylab/storylab/internal/catalog"
	"github.com/storylab/storylab/internal/coach"
	"github.com/storylab/storylab/internal/config"
	"github.com/storylab/storylab/internal/progress"
	"github.com/storylab/storylab/internal/session"
	"github.com/storylab/storylab/internal/storage"
	"github.com/storylab/storylab/internal/walker"
)

var lessonCmd = &cobra.Command{
	Use:   "lesson <module>",
	Short: "Walk through a module's lesson interactively",
	Long: `Walk through a module's lesson interactively.

Tutorial steps just read; exercise and prompt steps take your writing
and send it to the AI coach for feedback.

Commands at the prompt:
  :next   advance to the next step (marks the current one complete)
  :prev   go back one step
  :send   submit what you typed so far to the coach
  :quit   leave the lesson (progress is already saved)
Anything else is collected as your working text.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLesson(cmd, args[0])
	},
}

func runLesson(cmd *cobra.Command, moduleID string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	m, err := catalog.Get(moduleID)
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.DataDir)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer store.Close()

	coachClient := coach.NewClientWithBaseURL(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL)
	coachClient.SetModel(cfg.OpenAI.Model)

	sess := session.Local()
	if profileFlag != "" {
		sess = session.Session{ProfileID: profileFlag}
	}

	w, err := walker.New(m, sess, progress.NewTracker(store), coachClient)
	if err != nil {
		return err
	}

	fmt.Printf("\n%s (%d steps)\n", colorize(colorBold, m.Title), w.StepCount())

	printLessonStep(w)

	var draft []string
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Fprint(os.Stderr, "> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()

		switch strings.TrimSpace(line) {
		case ":quit", ":q":
			return scanner.Err()

		case ":next", ":n":
			if w.AtEnd() {
				printSuccess("That was the last step. %d of %d complete.", w.CompletedCount(), w.StepCount())
				continue
			}
			if _, err := w.Next(); err != nil {
				printError("saving progress: %v", err)
				continue
			}
			draft = draft[:0]
			printLessonStep(w)

		case ":prev", ":p":
			if w.Prev() {
				draft = draft[:0]
				printLessonStep(w)
			}

		case ":send", ":s":
			w.SetInput(strings.Join(draft, "\n"))
			reply, err := w.Submit(cmd.Context())
			if err != nil {
				printError("%v", err)
				continue
			}
			fmt.Printf("\n%s\n%s\n\n", colorize(colorCyan, "Coach:"), reply)

		default:
			draft = append(draft, line)
		}
	}
	return scanner.Err()
}

func printLessonStep(w *walker.Walker) {
	step := w.Step()

	marker := " "
	if w.Completed(step.ID) {
		marker = colorize(colorGreen, "✓")
	}
	fmt.Printf("\n%s Step %d/%d: %s\n\n", marker, w.Index()+1, w.StepCount(), colorize(colorBold, step.Title))
	fmt.Println(step.Content)

	if step.Interactive() {
		printStep("This step takes your writing. Type it in, then :send for feedback, :next when done.")
	} else {
		printStep("Read through, then :next to continue.")
	}
}
