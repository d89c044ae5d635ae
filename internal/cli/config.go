package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/tessro/spin/internal/config"
	spinerrors "github.com/tessro/spin/internal/errors"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Commands for viewing and editing spin configuration.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current configuration values.`,
	RunE:  runConfigShow,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit configuration file",
	Long:  `Open the configuration file in your default editor.`,
	RunE:  runConfigEdit,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	Long:  `Create a new configuration file with default values.`,
	RunE:  runConfigInit,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value.

Supported keys:
  playlist.max_title_length  Characters kept from each title
  playlist.max_songs         Song limit (0 for unlimited)
  menu.mode                  auto, plain, or interactive
  tui.theme                  auto, dark, or light
  log.level                  debug, info, warn, or error
  log.file                   Path of the rotating log file

Examples:
  spin config set playlist.max_songs 50
  spin config set menu.mode plain`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configSetThemeCmd = &cobra.Command{
	Use:   "set-theme",
	Short: "Interactively select the dashboard theme",
	Long:  `Shows a picker to select the color theme used by 'spin ui'.`,
	RunE:  runConfigSetTheme,
}

var intKeys = map[string]bool{
	"playlist.max_title_length": true,
	"playlist.max_songs":        true,
}

var stringKeys = map[string]bool{
	"menu.mode": true,
	"tui.theme": true,
	"log.level": true,
	"log.file":  true,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configSetThemeCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	if JSONOutput() {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(cfg)
	}

	// Pretty print as TOML
	encoder := toml.NewEncoder(cmd.OutOrStdout())
	encoder.Indent = "  "
	return encoder.Encode(cfg)
}

func runConfigEdit(cmd *cobra.Command, args []string) error {
	configPath := getConfigPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return fmt.Errorf("%w at %s", spinerrors.ErrConfigNotFound, configPath)
	}

	// Find editor
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		for _, e := range []string{"nano", "vim", "vi", "notepad"} {
			if _, err := exec.LookPath(e); err == nil {
				editor = e
				break
			}
		}
	}
	if editor == "" {
		return fmt.Errorf("no editor found. Set EDITOR environment variable")
	}

	editorCmd := exec.Command(editor, configPath)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	return editorCmd.Run()
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configPath := getConfigPath()

	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists at %s", configPath)
	}

	if err := writeConfigFile(configPath, config.Default()); err != nil {
		return err
	}

	if JSONOutput() {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{
			"status": "created",
			"path":   configPath,
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created config file: %s\n", configPath)
	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintln(out, "  1. List songs to load at startup under [playlist] songs")
	fmt.Fprintln(out, "  2. Run 'spin' to open the menu or 'spin ui' for the dashboard")
	return nil
}

func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultPath()
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	configPath := getConfigPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return fmt.Errorf("%w at %s", spinerrors.ErrConfigNotFound, configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	var rawConfig map[string]interface{}
	if _, err := toml.Decode(string(data), &rawConfig); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if rawConfig == nil {
		rawConfig = make(map[string]interface{})
	}

	if err := setRawValue(rawConfig, key, value); err != nil {
		return err
	}

	if err := writeConfigFile(configPath, rawConfig); err != nil {
		return err
	}

	if JSONOutput() {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{
			"status": "updated",
			"key":    key,
			"value":  value,
		})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
	return nil
}

// setRawValue stores value under a "section.field" key, typed by the key.
func setRawValue(raw map[string]interface{}, key, value string) error {
	parts := strings.Split(key, ".")
	if len(parts) != 2 {
		return fmt.Errorf("invalid key format. Use 'section.key' (e.g., menu.mode)")
	}
	section, field := parts[0], parts[1]

	var typed interface{}
	switch {
	case intKeys[key]:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("value must be an integer for %s", key)
		}
		typed = int64(i)
	case stringKeys[key]:
		typed = value
	default:
		return fmt.Errorf("unknown key: %s", key)
	}

	sectionMap, ok := raw[section].(map[string]interface{})
	if !ok {
		sectionMap = make(map[string]interface{})
		raw[section] = sectionMap
	}
	sectionMap[field] = typed
	return nil
}

func writeConfigFile(path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	_, _ = fmt.Fprintln(f, "# Spin Configuration")
	_, _ = fmt.Fprintln(f, "")

	encoder := toml.NewEncoder(f)
	encoder.Indent = "  "
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func runConfigSetTheme(cmd *cobra.Command, args []string) error {
	theme := cfg.TUI.Theme
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select dashboard theme").
				Description("auto follows the terminal background").
				Options(
					huh.NewOption("Auto", "auto"),
					huh.NewOption("Dark (Mocha)", "dark"),
					huh.NewOption("Light (Latte)", "light"),
				).
				Value(&theme),
		),
	).WithTheme(huh.ThemeCatppuccin())

	if err := form.Run(); err != nil {
		return fmt.Errorf("selection cancelled: %w", err)
	}

	return runConfigSet(cmd, []string{"tui.theme", theme})
}
