// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/cybrota/courseplanner/coursetree"
)

var errCoursesMissing = errors.New("some courses were not found")

// globalFlags are shared by every command
type globalFlags struct {
	data   string
	source string
	config string
	quiet  bool
}

// setup loads the configuration, applies the command-line overrides and
// returns a planner with an empty index
func (f *globalFlags) setup() *planner {
	config, err := LoadConfig(f.config)
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}
	if f.source != "" {
		config.Data.Format = f.source
	}
	if f.data != "" {
		config.Data.Path = f.data
		config.Data.DatabaseURL = ""
	}

	level := slog.LevelInfo
	if f.quiet {
		level = slog.LevelWarn
		config.Loader.ShowProgress = false
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	return newPlanner(config, logger)
}

// loadTree reads the configured catalog into a tree owned by the caller
func (f *globalFlags) loadTree(ctx context.Context) (*planner, *coursetree.Tree, error) {
	p := f.setup()
	tree, _, err := p.buildTree(ctx, p.location)
	if err != nil {
		return nil, nil, err
	}
	return p, tree, nil
}

func newRootCmd(ctx context.Context) *cobra.Command {
	asciiLogo := `
 ┌─┐┌─┐┬ ┬┬─┐┌─┐┌─┐  ┌─┐┬  ┌─┐┌┐┌┌┐┌┌─┐┬─┐
 │  │ ││ │├┬┘└─┐├┤   ├─┘│  ├─┤│││││││├┤ ├┬┘
 └─┘└─┘└─┘┴└─└─┘└─┘  ┴  ┴─┘┴ ┴┘└┘┘└┘└─┘┴└─
Course catalog lookup and schedule listing backed by a binary search tree [Version: %s%s%s]

`
	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	flags := &globalFlags{}

	runUI := func(cmd *cobra.Command, args []string) {
		p := flags.setup()
		if _, err := p.load(ctx, ""); err != nil {
			log.Fatalf("Error loading courses: %v", err)
		}
		defer p.close()

		if err := runBubbleTeaApp(p, NewPageCache()); err != nil {
			log.Fatalf("Error running course browser: %v", err)
		}
	}

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Launches the course browser UI",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run opens a terminal UI with prefix search over course IDs`),
		Args:  cobra.NoArgs,
		Run:   runUI,
	}

	var cmdMenu = &cobra.Command{
		Use:   "menu",
		Short: "Starts the numbered course planner menu",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Menu reads choices from standard input: 1 load, 2 list, 3 show, 4 remove, 5/6 other orders, 9 exit`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			p := flags.setup()
			defer p.close()
			runMenu(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), p)
		},
	}

	var cmdList = &cobra.Command{
		Use:   "list",
		Short: "Print every course in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, tree, err := flags.loadTree(ctx)
			if err != nil {
				return err
			}
			defer tree.Clear()

			orderName, _ := cmd.Flags().GetString("order")
			if orderName == "" {
				orderName = p.config.Display.Order
			}
			order, err := coursetree.ParseOrder(orderName)
			if err != nil {
				return err
			}

			presenter, err := newCommandPresenter(cmd, p)
			if err != nil {
				return err
			}
			return presenter.Listing(tree.Traverse(order))
		},
	}
	cmdList.Flags().String("order", "", "traversal order: in, pre or post (default from config)")
	cmdList.Flags().String("format", "", "output format: text, json, yaml or cbor (default from config)")

	var cmdShow = &cobra.Command{
		Use:   "show [course-id...]",
		Short: "Print courses with their prerequisites",
		Long:  "Show prints each course and its prerequisites. Without arguments the configured default course is shown. Exits with status 1 when a course is missing.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, tree, err := flags.loadTree(ctx)
			if err != nil {
				return err
			}
			defer tree.Clear()

			if len(args) == 0 {
				args = []string{p.config.Display.DefaultCourse}
			}

			presenter, err := newCommandPresenter(cmd, p)
			if err != nil {
				return err
			}

			missing := 0
			for _, id := range args {
				if c, found := tree.Search(id); found {
					err = presenter.Course(c)
				} else {
					missing++
					err = presenter.NotFound(id)
				}
				if err != nil {
					return err
				}
			}
			if missing > 0 {
				return fmt.Errorf("%w: %d of %d", errCoursesMissing, missing, len(args))
			}
			return nil
		},
	}
	cmdShow.Flags().String("format", "", "output format: text, json, yaml or cbor (default from config)")

	var cmdShape = &cobra.Command{
		Use:   "shape",
		Short: "View the layout of the course index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, tree, err := flags.loadTree(ctx)
			if err != nil {
				return err
			}
			defer tree.Clear()

			ascii, _ := cmd.Flags().GetBool("ascii")
			titles, _ := cmd.Flags().GetBool("titles")
			if ascii {
				tree.Print(cmd.OutOrStdout(), titles)
				return nil
			}
			return runShapeViewer(tree, titles)
		},
	}
	cmdShape.Flags().Bool("ascii", false, "print a plain text drawing instead of the interactive viewer")
	cmdShape.Flags().Bool("titles", false, "show course titles next to IDs")

	var cmdCheck = &cobra.Command{
		Use:   "check",
		Short: "Validate the catalog and the course index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, tree, err := flags.loadTree(ctx)
			if err != nil {
				return err
			}
			defer tree.Clear()
			return runCheck(cmd, tree)
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show configuration, creating the default file if needed",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings(cmd.OutOrStdout(), flags.config)
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Course Planner usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the courseplanner CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Course Planner version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:          "courseplanner",
		Version:      version,
		Long:         asciiLogo,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		// Default to the run command when no subcommand is provided
		Run: runUI,
	}
	rootCmd.PersistentFlags().StringVarP(&flags.data, "data", "d", "", "course data file or database URL (default from config: course.csv)")
	rootCmd.PersistentFlags().StringVar(&flags.source, "source", "", "data format: auto, csv, jsonc, html or postgres")
	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "config file (default $COURSEPLANNER_CONFIG or ~/.courseplanner.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&flags.quiet, "quiet", "q", false, "only log warnings and hide the progress bar")

	rootCmd.AddCommand(cmdRun, cmdMenu, cmdList, cmdShow, cmdShape, cmdCheck, cmdSettings, cmdUsage, cmdVersion)
	return rootCmd
}

func newCommandPresenter(cmd *cobra.Command, p *planner) (*Presenter, error) {
	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = p.config.Display.Format
	}
	return NewPresenter(cmd.OutOrStdout(), format)
}

// runCheck verifies the index structure and reports prerequisites that
// name courses outside the catalog
func runCheck(cmd *cobra.Command, tree *coursetree.Tree) error {
	out := cmd.OutOrStdout()

	if err := tree.Check(); err != nil {
		fmt.Fprintf(out, "❌ %sCourse index is inconsistent:%s %v\n", Error, Reset, err)
		return err
	}

	missing := checkPrerequisites(tree)
	for _, m := range missing {
		fmt.Fprintf(out, "⚠️  %s%s%s\n", Warning, m, Reset)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%d missing prerequisites", len(missing))
	}

	fmt.Fprintf(out, "✅ %s%d courses, height %d, every prerequisite is in the catalog%s\n", Green, tree.Len(), tree.Height(), Reset)
	return nil
}

func main() {
	InitializeColors()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(ctx).Execute(); err != nil {
		stop()
		os.Exit(1)
	}
}
