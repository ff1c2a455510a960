package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strings"
	"sync"
	"time"

	"github.com/smira/commander"
	"github.com/smira/flag"

	"github.com/kgtool-dev/kgtool/console"
	"github.com/kgtool-dev/kgtool/database"
	"github.com/kgtool-dev/kgtool/database/goleveldb"
	"github.com/kgtool-dev/kgtool/kgtool"
	"github.com/kgtool-dev/kgtool/utils"
)

// ToolContext is a common context shared by all commands
type ToolContext struct {
	sync.Mutex

	flags, globalFlags *flag.FlagSet
	configLoaded       bool

	progress kgtool.Progress
	database database.Storage

	fileCPUProfile *os.File
	fileMemProfile *os.File
	fileMemStats   *os.File
}

var context *ToolContext

// FatalError is type for panicking to abort execution with non-zero
// exit code and print meaningful explanation
type FatalError struct {
	ReturnCode int
	Message    string
}

// Fatal panics and aborts execution with exit code 1
func Fatal(err error) {
	returnCode := 1
	if err == commander.ErrFlagError || err == commander.ErrCommandError {
		returnCode = 2
	}
	panic(&FatalError{ReturnCode: returnCode, Message: err.Error()})
}

// Config loads and returns current configuration
func (context *ToolContext) Config() *utils.ConfigStructure {
	context.Lock()
	defer context.Unlock()

	return context.config()
}

func (context *ToolContext) config() *utils.ConfigStructure {
	if !context.configLoaded {
		var err error

		configLocation := context.globalFlags.Lookup("config").Value.String()
		if configLocation != "" {
			err = utils.LoadConfig(configLocation, &utils.Config)

			if err != nil {
				Fatal(err)
			}
		} else {
			configLocations := []string{
				filepath.Join(os.Getenv("HOME"), ".kgtool.conf"),
				"/etc/kgtool.conf",
			}

			for _, configLocation := range configLocations {
				err = utils.LoadConfig(configLocation, &utils.Config)
				if err == nil {
					break
				}
				if !os.IsNotExist(err) {
					Fatal(fmt.Errorf("error loading config file %s: %s", configLocation, err))
				}
			}

			if err != nil {
				fmt.Fprintf(os.Stderr, "Config file not found, creating default config at %s\n\n", configLocations[0])
				utils.SaveConfig(configLocations[0], &utils.Config)
			}
		}

		if context.globalFlags.IsSet("root-dir") {
			utils.Config.RootDir = context.globalFlags.Lookup("root-dir").Value.String()
		}
		if context.globalFlags.IsSet("log-level") {
			utils.Config.LogLevel = context.globalFlags.Lookup("log-level").Value.String()
		}
		if context.globalFlags.IsSet("log-format") {
			utils.Config.LogFormat = context.globalFlags.Lookup("log-format").Value.String()
		}

		context.configLoaded = true
	}
	return &utils.Config
}

// Progress creates or returns Progress object
func (context *ToolContext) Progress() kgtool.Progress {
	context.Lock()
	defer context.Unlock()

	return context._progress()
}

func (context *ToolContext) _progress() kgtool.Progress {
	if context.progress == nil {
		context.progress = console.NewProgress()
		context.progress.Start()
	}

	return context.progress
}

// DBPath builds path to database
func (context *ToolContext) DBPath() string {
	context.Lock()
	defer context.Unlock()

	return context.dbPath()
}

func (context *ToolContext) dbPath() string {
	return filepath.Join(context.config().RootDir, "db")
}

// Database opens and returns current instance of database
func (context *ToolContext) Database() (database.Storage, error) {
	context.Lock()
	defer context.Unlock()

	return context._database()
}

func (context *ToolContext) _database() (database.Storage, error) {
	if context.database == nil {
		var err error

		context.database, err = goleveldb.NewDB(context.dbPath())
		if err != nil {
			return nil, fmt.Errorf("can't instantiate database: %s", err)
		}
	}

	var tries int
	if context.config().DatabaseOpenAttempts == -1 {
		tries = context.globalFlags.Lookup("db-open-attempts").Value.Get().(int)
	} else {
		tries = context.config().DatabaseOpenAttempts
	}

	const BaseDelay = 10 * time.Second
	const Jitter = 1 * time.Second

	for ; tries >= 0; tries-- {
		err := context.database.Open()
		if err == nil || !strings.Contains(err.Error(), "resource temporarily unavailable") {
			return context.database, err
		}

		if tries > 0 {
			delay := time.Duration(rand.NormFloat64()*float64(Jitter) + float64(BaseDelay))
			if delay < 0 {
				delay = time.Second
			}

			context._progress().PrintfStdErr("Unable to open database, sleeping %s, attempts left %d...\n", delay, tries)
			time.Sleep(delay)
		}
	}

	return nil, fmt.Errorf("unable to reopen the DB, maximum number of retries reached")
}

// CloseDatabase closes the db temporarily
func (context *ToolContext) CloseDatabase() error {
	context.Lock()
	defer context.Unlock()

	if context.database == nil {
		return nil
	}

	return context.database.Close()
}

// UpdateFlags sets internal copy of flags in the context
func (context *ToolContext) UpdateFlags(flags *flag.FlagSet) {
	context.Lock()
	defer context.Unlock()

	context.flags = flags
}

// Flags returns current command flags
func (context *ToolContext) Flags() *flag.FlagSet {
	context.Lock()
	defer context.Unlock()

	return context.flags
}

// GlobalFlags returns flags passed to all commands
func (context *ToolContext) GlobalFlags() *flag.FlagSet {
	context.Lock()
	defer context.Unlock()

	return context.globalFlags
}

// Shutdown shuts context down
func (context *ToolContext) Shutdown() {
	context.Lock()
	defer context.Unlock()

	if kgtool.EnableDebug {
		if context.fileMemProfile != nil {
			pprof.WriteHeapProfile(context.fileMemProfile)
			context.fileMemProfile.Close()
			context.fileMemProfile = nil
		}
		if context.fileCPUProfile != nil {
			pprof.StopCPUProfile()
			context.fileCPUProfile.Close()
			context.fileCPUProfile = nil
		}
		if context.fileMemStats != nil {
			context.fileMemStats.Close()
			context.fileMemStats = nil
		}
	}
	if context.database != nil {
		context.database.Close()
		context.database = nil
	}
	if context.progress != nil {
		context.progress.Shutdown()
		context.progress = nil
	}
}

// InitContext initializes context with default settings
func InitContext(flags *flag.FlagSet) error {
	if context != nil {
		return fmt.Errorf("context already initialized")
	}

	context = &ToolContext{
		flags:       flags,
		globalFlags: flags,
	}

	if kgtool.EnableDebug {
		if err := context.startProfiling(flags); err != nil {
			return err
		}
	}

	cfg := context.Config()
	if cfg.LogFormat == "json" {
		utils.SetupJSONLogger(cfg.LogLevel, os.Stdout)
	} else {
		utils.SetupDefaultLogger(cfg.LogLevel)
	}

	return nil
}

// startProfiling opens the profile outputs requested by debug-build
// flags
func (context *ToolContext) startProfiling(flags *flag.FlagSet) error {
	var err error

	if cpuprofile := flags.Lookup("cpuprofile").Value.String(); cpuprofile != "" {
		context.fileCPUProfile, err = os.Create(cpuprofile)
		if err != nil {
			return err
		}
		pprof.StartCPUProfile(context.fileCPUProfile)
	}

	if memprofile := flags.Lookup("memprofile").Value.String(); memprofile != "" {
		context.fileMemProfile, err = os.Create(memprofile)
		if err != nil {
			return err
		}
	}

	if memstats := flags.Lookup("memstats").Value.String(); memstats != "" {
		interval := flags.Lookup("meminterval").Value.Get().(time.Duration)

		context.fileMemStats, err = os.Create(memstats)
		if err != nil {
			return err
		}

		context.fileMemStats.WriteString("# Time\tHeapSys\tHeapAlloc\tHeapIdle\tHeapReleased\n")

		go func() {
			var stats runtime.MemStats

			start := time.Now().UnixNano()

			for {
				runtime.ReadMemStats(&stats)
				if context.fileMemStats == nil {
					break
				}
				context.fileMemStats.WriteString(fmt.Sprintf("%d\t%d\t%d\t%d\t%d\n",
					(time.Now().UnixNano()-start)/1000000, stats.HeapSys, stats.HeapAlloc, stats.HeapIdle, stats.HeapReleased))
				time.Sleep(interval)
			}
		}()
	}

	return nil
}

// ShutdownContext shuts context down
func ShutdownContext() {
	context.Shutdown()
	context = nil
}
