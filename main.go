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
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	asciiLogo := `
██████╗  █████╗ ███╗   ██╗██╗  ██╗████████╗██████╗ ███████╗███████╗
██╔══██╗██╔══██╗████╗  ██║██║ ██╔╝╚══██╔══╝██╔══██╗██╔════╝██╔════╝
██████╔╝███████║██╔██╗ ██║█████╔╝    ██║   ██████╔╝█████╗  █████╗
██╔══██╗██╔══██║██║╚██╗██║██╔═██╗    ██║   ██╔══██╗██╔══╝  ██╔══╝
██║  ██║██║  ██║██║ ╚████║██║  ██╗   ██║   ██║  ██║███████╗███████╗
╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═══╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝╚══════╝╚══════╝
Order-statistics AVL and Red-Black trees with script replay [Version: %s%s%s]

Copyright @ Naren Yellavula

`
	mode := InitializeColors()
	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var configPath string
	loadConfig := func() *Config {
		config, err := LoadConfig(configPath)
		if err != nil {
			log.Printf("Failed to load configuration: %v. Using default settings.", err)
		}
		return config
	}

	var cmdRun = &cobra.Command{
		Use:   "run [file]",
		Short: "Replay one script and print its answers",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run replays a script from --ops, a file or stdin on an empty tree`),
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfig()
			variant, _ := cmd.Flags().GetString("tree")
			if variant == "" {
				variant = config.Tree
			}
			ops, _ := cmd.Flags().GetString("ops")

			recs, err := readScript(ops, args, os.Stdin)
			if err != nil {
				log.Fatalf("Error reading script: %v", err)
			}
			if err := runScript(os.Stdout, variant, config, recs); err != nil {
				log.Fatalf("Error replaying script: %v", err)
			}
		},
	}
	cmdRun.Flags().String("tree", "", "tree variant: avl or rb (default from config)")
	cmdRun.Flags().String("ops", "", `inline script, e.g. "k 1 k 2 m 1"`)

	var cmdCheck = &cobra.Command{
		Use:   "check <dir>...",
		Short: "Replay fixtures and compare with stored answers",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Check replays every <dir>/*.txt and compares with <dir>/answers/*.txt`),
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfig()
			flag, _ := cmd.Flags().GetString("tree")
			vs, err := variants(flag)
			if err != nil {
				log.Fatalf("%v", err)
			}
			if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
				config.Check.Progress = false
			}

			log.Printf("Checking %d directories on %s", len(args), formatVariants(vs))
			report, err := checkDirs(args, vs, config)
			if err != nil {
				log.Fatalf("Error checking fixtures: %v", err)
			}
			fmt.Println(report.render(newStyles(mode)))
			if report.Failed > 0 {
				os.Exit(1)
			}
		},
	}
	cmdCheck.Flags().String("tree", "both", "tree variant: avl, rb or both")
	cmdCheck.Flags().Bool("quiet", false, "hide the progress bar")

	var cmdGenerate = &cobra.Command{
		Use:   "generate",
		Short: "Write random fixtures with their answers",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Generate writes <dir>/N.txt scripts and <dir>/answers/N.txt answers`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfig()
			opts := generateOptions{Progress: config.Check.Progress}
			opts.Dir, _ = cmd.Flags().GetString("dir")
			opts.Num, _ = cmd.Flags().GetInt("num")
			opts.Elems, _ = cmd.Flags().GetInt("elems")
			opts.Upper, _ = cmd.Flags().GetInt("upper")
			opts.Seed, _ = cmd.Flags().GetInt64("seed")
			opts.Vary, _ = cmd.Flags().GetBool("vary")
			if !cmd.Flags().Changed("num") {
				opts.Num = config.Generate.Num
			}
			if !cmd.Flags().Changed("elems") {
				opts.Elems = config.Generate.Elems
			}
			if !cmd.Flags().Changed("upper") {
				opts.Upper = config.Generate.Upper
			}
			if !cmd.Flags().Changed("seed") {
				opts.Seed = time.Now().UnixNano()
			}

			if _, err := generateFixtures(opts); err != nil {
				log.Fatalf("Error generating fixtures: %v", err)
			}
		},
	}
	cmdGenerate.Flags().String("dir", "tests", "output directory")
	cmdGenerate.Flags().Int("num", defaultConfig.Generate.Num, "number of fixtures")
	cmdGenerate.Flags().Int("elems", defaultConfig.Generate.Elems, "minimum number of keys per fixture")
	cmdGenerate.Flags().Int("upper", defaultConfig.Generate.Upper, "keys are drawn from [0, upper)")
	cmdGenerate.Flags().Int64("seed", 0, "random seed (default: current time)")
	cmdGenerate.Flags().Bool("vary", false, "draw elems and upper per fixture up to the given bounds")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Ranktree usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the ranktree CLI usage guide`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show configuration, creating the default file if missing",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings(os.Stdout, configPath)
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Ranktree version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	defaultPath, err := getConfigPath()
	if err != nil {
		defaultPath = ""
	}

	var rootCmd = &cobra.Command{
		Use:     "ranktree",
		Version: version,
		Long:    asciiLogo,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultPath, "config file")
	rootCmd.AddCommand(cmdRun, cmdCheck, cmdGenerate, cmdUsage, cmdSettings, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
