package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"ai-task-planner/config"
	"ai-task-planner/internal/ai"
	"ai-task-planner/internal/ai/enhancer"
	aiUC "ai-task-planner/internal/ai/usecase"
	"ai-task-planner/internal/migration"
	"ai-task-planner/internal/model"
	"ai-task-planner/internal/notification/delivery/job"
	notifRepo "ai-task-planner/internal/notification/repository/postgre"
	notifUC "ai-task-planner/internal/notification/usecase"
)

type MigrateCmd struct{}

func (c *MigrateCmd) Run(app *appContext) error {
	db, err := app.DB()
	if err != nil {
		return err
	}
	applied, err := migration.NewRunner(db, migration.Files(), app.l).Up(app.ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(app.out, "applied %d migration(s)\n", applied)
	return nil
}

type PreviewCmd struct {
	Text     string `arg:"" help:"Free-form text, e.g. \"reunião amanhã às 15h\"."`
	Day      string `help:"Reference day: YYYY-MM-DD, today, tomorrow, \"in 3 days\" or \"next monday\"." default:""`
	Timezone string `help:"IANA timezone of the user." default:""`
	Local    bool   `help:"Skip the LLM and use the local enhancer."`
}

func (c *PreviewCmd) Run(app *appContext) error {
	uc, err := newAIUseCase(app, c.Local)
	if err != nil {
		return err
	}

	tz := c.Timezone
	if tz == "" {
		tz = app.cfg.AI.DefaultTimezone
	}
	out, err := uc.Preview(app.ctx, model.Scope{UserID: "planctl", Timezone: tz}, ai.PreviewInput{Text: c.Text, Day: c.Day})
	if err != nil {
		return err
	}
	printPreview(app, out)
	return nil
}

type EnhanceCmd struct {
	Text  string `arg:"" help:"Free-form text."`
	Local bool   `help:"Skip the LLM and use the local enhancer."`
}

func (c *EnhanceCmd) Run(app *appContext) error {
	uc, err := newAIUseCase(app, c.Local)
	if err != nil {
		return err
	}
	out, err := uc.EnhanceText(app.ctx, ai.EnhanceTextInput{Text: c.Text})
	if err != nil {
		return err
	}
	fmt.Fprintln(app.out, out.Text)
	return nil
}

type SweepCmd struct{}

func (c *SweepCmd) Run(app *appContext) error {
	db, err := app.DB()
	if err != nil {
		return err
	}
	uc := notifUC.New(app.l, notifRepo.New(db, app.l), nil, time.UTC)
	n, err := job.New(app.l, uc, job.Config{}).RunOnce(app.ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(app.out, "dispatched %d reminder(s)\n", n)
	return nil
}

// newAIUseCase builds the pipeline without storage; only Preview and
// EnhanceText may be called on it.
func newAIUseCase(app *appContext, local bool) (ai.UseCase, error) {
	aiCfg := app.cfg.AI
	if local {
		aiCfg.Enhancer = config.EnhancerLocal
	}
	e, err := enhancer.FromConfig(app.ctx, app.l, aiCfg, app.cfg.LLM, nil)
	if err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(aiCfg.DefaultTimezone)
	if err != nil {
		loc = time.UTC
	}
	return aiUC.New(app.l, e, nil, aiUC.Options{DefaultLoc: loc}), nil
}

func printPreview(app *appContext, out ai.PreviewOutput) {
	fmt.Fprintf(app.out, "enhanced: %s\n", strings.ReplaceAll(out.EnhancedText, "\n", " | "))
	fmt.Fprintf(app.out, "intent:   %s\n\n", out.Intent.Kind)

	w := tabwriter.NewWriter(app.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TITLE\tSTART\tEND\tREMINDERS")
	for _, t := range out.Tasks {
		start := t.Date.Format("2006-01-02 15:04")
		if t.AllDay {
			start = t.Date.Format("2006-01-02") + " (all day)"
		}
		end := "-"
		if t.EndDate != nil {
			end = t.EndDate.Format("15:04")
		}
		reminders := make([]string, 0, len(t.Reminders))
		for _, r := range t.Reminders {
			reminders = append(reminders, r.Format("15:04"))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.Title, start, end, strings.Join(reminders, ","))
	}
	w.Flush()
}
