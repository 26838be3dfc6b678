package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/halvard/mirrormenu/internal/adb"
	"github.com/halvard/mirrormenu/internal/config"
	"github.com/halvard/mirrormenu/internal/logging"
	"github.com/halvard/mirrormenu/internal/remux"
	"github.com/halvard/mirrormenu/internal/scrcpy"
	"github.com/halvard/mirrormenu/internal/session"
	"github.com/halvard/mirrormenu/internal/ui"
)

// Launcher flags
var (
	serialFlag     string
	recordFlag     bool
	streamFlag     bool
	noClearFlag    bool
	logEnabled     bool
	configPath     string
	logFilePath    string
	logMaxKB       int
	logTrimPercent int
)

func init() {
	rootCmd.Flags().StringVar(&serialFlag, "serial", "", "Device serial to mirror (overrides the remembered device)")
	rootCmd.Flags().BoolVar(&recordFlag, "record", false, "Record the session to a file")
	rootCmd.Flags().BoolVar(&streamFlag, "stream", false, "Capture mirroring process output into the log file")
	rootCmd.Flags().BoolVar(&noClearFlag, "no-clear", false, "Render menus inline instead of using the alternate screen")
	rootCmd.PersistentFlags().BoolVar(&logEnabled, "log", false, "Write a log file")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: OS config directory)")
	rootCmd.PersistentFlags().StringVar(&logFilePath, "log-file", "", "Log file path (default: alongside the config file, implies --log)")
	rootCmd.PersistentFlags().IntVar(&logMaxKB, "log-max-kb", 512, "Rotate the log file above this size")
	rootCmd.PersistentFlags().IntVar(&logTrimPercent, "log-trim-percent", 50, "Percentage of oldest log lines dropped on rotation")
}

// resolveConfigPath applies the --config override over the OS default.
func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.DefaultPath()
}

// initLogging sets up the file logger next to the config file unless a path
// was given. The sink is enabled by --log, --log-file, or the persisted
// settings toggle; otherwise the logger stays disabled.
func initLogging(cfgPath string, enabled bool) error {
	path := logFilePath
	if path == "" && (logEnabled || enabled) {
		path = filepath.Join(filepath.Dir(cfgPath), "mirrormenu.log")
	}
	return logging.InitializeFile(path, logMaxKB, logTrimPercent)
}

func runLauncher(cmd *cobra.Command, args []string) error {
	cfgPath, err := resolveConfigPath()
	if err != nil {
		return err
	}

	// The config carries the logging toggle, so it loads first.
	store := config.NewStore(cfgPath)
	if err := store.Load(); err != nil {
		return err
	}
	if err := initLogging(cfgPath, store.Doc.LoggingEnabled); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logging.Sync()

	if err := ui.CheckTerminal(); err != nil {
		return err
	}
	if err := adb.CheckInstalled(); err != nil {
		return err
	}
	if err := scrcpy.CheckInstalled(); err != nil {
		return err
	}

	if serialFlag != "" {
		store.Doc.SelectedDevice = serialFlag
	}

	ctrl := session.New(
		store,
		&ui.UI{NoClear: noClearFlag},
		adb.NewBridge(),
		scrcpy.NewLauncher(),
		remux.New(),
		session.Options{Streaming: streamFlag},
	)

	if len(args) == 1 {
		return ctrl.DirectLaunch(args[0], recordFlag)
	}
	if recordFlag {
		return fmt.Errorf("--record needs a preset name; use the r key inside the menu instead")
	}
	return ctrl.MainMenu()
}

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List devices known to the debug bridge",
	Long: `List the devices the Android debug bridge currently sees, with their
serial, model, and connection state. Devices in the "unauthorized" state
need the debugging prompt accepted on the device screen.`,
	RunE: runDevices,
}

func runDevices(cmd *cobra.Command, args []string) error {
	if err := adb.CheckInstalled(); err != nil {
		return err
	}
	devices, err := adb.NewBridge().List()
	if err != nil {
		return fmt.Errorf("device scan failed: %w", err)
	}
	if len(devices) == 0 {
		fmt.Println("No devices found.")
		fmt.Println()
		fmt.Println("Troubleshooting:")
		fmt.Println("  - Check the USB cable and that debugging is enabled on the device")
		fmt.Println("  - Accept the debugging authorization prompt on the device screen")
		fmt.Println("  - For wireless devices, pair and connect from the Devices menu")
		return nil
	}

	fmt.Printf("Found %d device(s):\n\n", len(devices))
	for i, d := range devices {
		fmt.Printf("%d. %s\n", i+1, d.Label())
	}
	return nil
}
