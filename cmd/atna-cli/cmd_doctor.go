package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/persistorai/atna/internal/config"
)

func newDoctorCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose configuration",
		Long:  "Report the resolved system identity, output settings and config sources",
		// skip setup; doctor resolves and reports config itself
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON")
	return cmd
}

type checkResult struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
	Hint   string `json:"hint,omitempty"`
}

func runDoctor(cmd *cobra.Command, asJSON bool) error {
	var results []checkResult

	// 1. .env file.
	if err := godotenv.Load(); err != nil {
		results = append(results, checkResult{Name: ".env file", Passed: true, Detail: "not present"})
	} else {
		results = append(results, checkResult{Name: ".env file", Passed: true, Detail: "loaded"})
	}

	// 2. Config file.
	cfgPath, file, cfgErr := loadConfigFile()
	switch {
	case cfgErr == nil:
		results = append(results, checkResult{Name: "Config file", Passed: true, Detail: fmt.Sprintf("found (%s)", cfgPath)})
	case errors.Is(cfgErr, fs.ErrNotExist):
		results = append(results, checkResult{Name: "Config file", Passed: true, Detail: fmt.Sprintf("not present (%s)", cfgPath)})
	default:
		results = append(results, checkResult{
			Name: "Config file", Passed: false,
			Detail: cfgPath,
			Hint:   fmt.Sprintf("Fix the YAML syntax. Error: %v", cfgErr),
		})
	}

	// 3. Environment and flags.
	cfg, err := config.Load()
	if err == nil {
		if file != nil {
			applyConfigFile(cfg, file.resolve(flagProfile))
		}
		err = applyFlags(cmd, cfg)
	}
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		results = append(results, checkResult{
			Name: "Configuration", Passed: false,
			Hint: err.Error(),
		})
		return printDoctor(results, asJSON)
	}
	results = append(results, checkResult{
		Name: "Configuration", Passed: true,
		Detail: fmt.Sprintf("format=%s indent=%d workers=%d log=%s", cfg.Format, cfg.Indent, cfg.Workers, cfg.LogLevel),
	})

	// 4. System identity.
	if cfg.SystemName == "" {
		results = append(results, checkResult{
			Name: "System name", Passed: false,
			Hint: "Set --system-name, ATNA_SYSTEM_NAME, or system_name in ~/.atna/config.yaml",
		})
	} else {
		results = append(results, checkResult{Name: "System name", Passed: true, Detail: cfg.SystemName})
	}

	if cfg.Hostname == "" {
		results = append(results, checkResult{
			Name: "Hostname", Passed: true,
			Detail: "empty, participants will carry no network access point",
		})
	} else {
		results = append(results, checkResult{Name: "Hostname", Passed: true, Detail: cfg.Hostname})
	}

	return printDoctor(results, asJSON)
}

func printDoctor(results []checkResult, asJSON bool) error {
	allPassed := true
	for _, r := range results {
		allPassed = allPassed && r.Passed
	}

	if asJSON {
		if err := formatJSON(os.Stdout, results); err != nil {
			return err
		}
	} else {
		fmt.Println("\nATNA Doctor")
		fmt.Println("===========")
		fmt.Println()
		for _, r := range results {
			mark := "✅"
			if !r.Passed {
				mark = "❌"
			}
			if r.Detail != "" {
				fmt.Printf("%s %s: %s\n", mark, r.Name, r.Detail)
			} else {
				fmt.Printf("%s %s\n", mark, r.Name)
			}
			if !r.Passed && r.Hint != "" {
				fmt.Printf("   Hint: %s\n", r.Hint)
			}
		}
		fmt.Println()
		if allPassed {
			fmt.Println("✅ All checks passed!")
		} else {
			fmt.Println("❌ Some checks failed.")
		}
	}

	if !allPassed {
		return fmt.Errorf("doctor found issues")
	}
	return nil
}
