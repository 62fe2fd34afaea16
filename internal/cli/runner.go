package cli

import (
	"fmt"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/DanielWang2002/KanseiTabi/internal/assistant"
	"github.com/DanielWang2002/KanseiTabi/internal/config"
	"github.com/DanielWang2002/KanseiTabi/internal/model"
	"github.com/DanielWang2002/KanseiTabi/internal/store/jsonstore"
	"github.com/DanielWang2002/KanseiTabi/internal/trip"
	"github.com/DanielWang2002/KanseiTabi/internal/tui"
	"github.com/DanielWang2002/KanseiTabi/internal/ui"
)

// Options tune behavior from root flags.
type Options struct {
	DataDir string // override for the data directory
	NoColor bool
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error,
// 2 usage). No arguments launches the full-screen UI.
func Run(args []string, opt Options) int {
	if opt.NoColor {
		ui.SetColorEnabled(false)
	}
	cfg := config.Load(opt.DataDir)
	state := trip.Open(jsonstore.New(cfg.DataDir))

	if len(args) == 0 {
		return doUI(cfg, state)
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "ui":
		return doUI(cfg, state)

	case "trip":
		return doTrip(cfg, state)

	case "hotel":
		return runHotel(state, a)

	case "plan":
		return runPlan(state, a)

	case "expense":
		return runExpense(cfg, state, a)

	case "ask":
		return doAsk(cfg, strings.Join(a, " "))
	}

	ui.Fail("unknown subcommand: " + cmd)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`tabi - a travel notebook for your terminal

Usage:
  tabi [subcommand] [args]

Subcommands:
  (none) | ui                 Full-screen trip planner
  trip                        Show the trip name and members
  hotel add|ls|rm             Manage the accommodation directory
  plan add|ls|rm              Manage the day-by-day itinerary
  expense add|ls|balances     Shared wallet and settlement
  ask <question...>           One-shot travel assistant question

Examples:
  tabi hotel add -n "Hotel Gracery" -a "1-chome Kabukicho, Shinjuku"
  tabi plan add -d 2 -t 09:00 "Fushimi Inari"
  tabi expense add -a 3200 -c food "Ramen dinner"
  tabi expense balances
  tabi ask "how do I get from Kyoto to Nara?"
`)
}

func doUI(cfg config.Config, state *trip.State) int {
	session := assistant.NewSession(
		assistant.NewOpenAIClient(cfg.APIKey, cfg.Model),
		cfg.AssistantTimeout(),
	)
	if err := tui.Run(cfg, state, session); err != nil {
		ui.Fail("ui: " + err.Error())
		return 1
	}
	return 0
}

func doTrip(cfg config.Config, state *trip.State) int {
	t := state.Trip()
	lines := []string{
		ui.Title.Render(t.Name),
		ui.Muted.Render("members: ") + strings.Join(t.Members, ", "),
		ui.Muted.Render("spent:   ") + ui.Money(cfg.Currency, state.Total()),
		ui.Muted.Render("data:    ") + cfg.DataDir,
	}
	fmt.Println(ui.Panel(strings.Join(lines, "\n")))
	return 0
}

func doAsk(cfg config.Config, question string) int {
	if strings.TrimSpace(question) == "" {
		ui.Fail("usage: tabi ask <question...>")
		return 2
	}
	if cfg.APIKey == "" {
		ui.Fail("no API key found. Set OPENAI_API_KEY (a .env file works too)")
		return 2
	}
	session := assistant.NewSession(
		assistant.NewOpenAIClient(cfg.APIKey, cfg.Model),
		cfg.AssistantTimeout(),
	)
	do, ok := session.Submit(question)
	if !ok {
		ui.Fail("ask: could not submit question")
		return 1
	}
	reply := do()
	session.Finish(reply)
	fmt.Println(reply.Text)
	return 0
}

// parseIndex converts a 1-based user index, validating against list length.
func parseIndex(arg string, length int) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("not a number: %s", arg)
	}
	if n < 1 || n > length {
		return 0, fmt.Errorf("index out of range: have %d, got %d", length, n)
	}
	return n - 1, nil
}

func categoryFromString(s string) model.Category {
	c := model.Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return model.CategoryOther
	}
	return c
}

// newFlagSet builds a subcommand flag set that reports usage instead of
// exiting the process.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SortFlags = false
	return fs
}
