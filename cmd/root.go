package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/oakwood-commons/ldx/internal/ui"
	"github.com/oakwood-commons/ldx/pkg/loader"
	"github.com/oakwood-commons/ldx/pkg/logger"
	"github.com/oakwood-commons/ldx/pkg/sectionlist"
	"github.com/oakwood-commons/ldx/pkg/settings"
)

// errShowHelp is returned by loadDocument when no input is provided and
// help should be shown instead.
var errShowHelp = errors.New("no input provided")

var (
	themeName      string
	configFile     string
	noColor        bool
	debug          bool
	keyMode        string
	renderSnapshot bool
	widthOverride  int
	heightOverride int

	rootCtx context.Context

	// Indirections for tests.
	isTerminal   = func(fd uintptr) bool { return term.IsTerminal(int(fd)) }
	terminalSize = func(fd uintptr) (int, int, error) { return term.GetSize(int(fd)) }
	runProgram   = func(m *ui.Model) error {
		p := tea.NewProgram(m)
		_, err := p.Run()
		return err
	}
)

var rootCmd = &cobra.Command{
	Use:   settings.CliBinaryName + " [file]",
	Short: "Browse and reorder sectioned lists in the terminal",
	Long: `ldx renders a sectioned YAML list as an interactive terminal widget.
Rows can be deleted and reordered; every piece of the display is served
through a data-source adapter that the bundled widget consumes, making ldx
both a small tool and a worked example for the sectionlist package.`,
	Example: "\n  ldx groceries.yaml\n  ldx groceries.yaml --theme light\n  cat groceries.yaml | ldx --snapshot\n",
	Args:    cobra.MaximumNArgs(1),
	Version: settings.VersionInformation.BuildVersion,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		// debug maps to zap.DebugLevel (-1), otherwise zap.InfoLevel (0).
		var level int8 = 0
		if debug {
			level = -1
		}
		lgr := logger.Get(level)
		lgr = logger.WithValues(lgr, logger.CommandKey, cmd.Name())
		rootCtx = logger.WithLogger(context.Background(), lgr)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		if errors.Is(err, errShowHelp) {
			return cmd.Help()
		}
		return err
	},
	SilenceUsage: true,
}

func run(cmd *cobra.Command, args []string) error {
	lgr := logger.FromContext(rootCtx)

	cfg, err := loadMergedConfig(resolveConfigPath(configFile))
	if err != nil {
		return err
	}

	doc, err := loadDocument(args)
	if err != nil {
		return err
	}
	lgr.V(1).Info("document loaded", "name", doc.Name, "sections", len(doc.Sections))

	adapter := buildAdapter(doc)
	adapter.SetLogger(*lgr)

	useColor := !noColor && (cfg.NoColor == nil || !*cfg.NoColor)
	theme := resolveTheme(cfg, themeName)
	mode := keyMode
	if mode == "" {
		mode = cfg.Keymap
	}

	width, height := widthOverride, heightOverride
	if width <= 0 || height <= 0 {
		if w, h, err := terminalSize(os.Stdout.Fd()); err == nil {
			if width <= 0 {
				width = w
			}
			if height <= 0 {
				height = h
			}
		}
	}

	model := ui.NewModel(adapter, ui.Options{
		Title:   doc.Name,
		Theme:   &theme,
		NoColor: !useColor,
		Keymap:  mode,
		Width:   width,
		Height:  height,
		Logger:  lgr,
	})

	if renderSnapshot {
		fmt.Fprintln(cmd.OutOrStdout(), model.Snapshot())
		return nil
	}
	if !isTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("stdout is not a terminal; use --snapshot for non-interactive output")
	}
	return runProgram(model)
}

// buildAdapter wires the document into a sectioned adapter with the demo's
// editing delegate and positional title lists installed.
func buildAdapter(doc *loader.Document) *sectionlist.Adapter[string, *ui.Cell] {
	adapter := sectionlist.NewSectioned(
		doc.ItemSections(),
		ui.ReuseKeyItem,
		func(cell *ui.Cell, item string) { cell.Text = item },
	)
	headers := doc.HeaderTitles()
	adapter.SetHeaderTitles(headers)
	adapter.SetFooterTitles(doc.FooterTitles())
	adapter.SetDelegate(ui.NewEditingDelegate(adapter, headers))
	return adapter
}

// loadDocument reads the input from the file argument or, when piped, from
// stdin.
func loadDocument(args []string) (*loader.Document, error) {
	if len(args) == 1 {
		return loader.Load(args[0])
	}
	if !isTerminal(os.Stdin.Fd()) {
		return loader.LoadReader(os.Stdin)
	}
	return nil, errShowHelp
}

func init() {
	rootCmd.Flags().StringVar(&themeName, "theme", "", "theme name (default from config)")
	rootCmd.Flags().StringVar(&configFile, "config-file", "", "path to a YAML config file (themes, settings)")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable color output")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.Flags().StringVar(&keyMode, "keymap", "", "keybinding mode: vim (default) or function")
	rootCmd.Flags().BoolVar(&renderSnapshot, "snapshot", false, "render a single frame and exit; honors --width/--height")
	rootCmd.Flags().IntVar(&widthOverride, "width", 0, "output width in columns (default: detected)")
	rootCmd.Flags().IntVar(&heightOverride, "height", 0, "output height in rows (default: detected)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
