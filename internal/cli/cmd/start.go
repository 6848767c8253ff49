package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/matjam/blazefx/internal/cli/cmd/utils"
	"github.com/matjam/blazefx/internal/ipc"
	"github.com/matjam/blazefx/internal/stage"
	"github.com/sevlyar/go-daemon"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewStartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the blazefx daemon",
		Long: `Starts the daemon that owns the animated elements from the config file,
serves the control socket used by the other commands and, unless
preview_addr is empty, a browser preview of every element.`,
		Run: func(cmd *cobra.Command, args []string) {
			if v, err := cmd.Flags().GetBool("background"); err == nil && v {
				daemonize()
				return
			}
			StartStage()
		},
	}
	cmd.Flags().BoolP("background", "b", false, "Run as a daemon")
	return cmd
}

func daemonize() {
	cntxt := &daemon.Context{
		PidFileName: filepath.Join(filepath.Dir(ipc.SocketPath()), "blazefx.pid"),
		PidFilePerm: 0644,
		WorkDir:     "/",
		Umask:       027,
		Env:         append(os.Environ(), "BACKGROUND_PROCESS=1"),
	}

	child, err := cntxt.Reborn()
	if err != nil {
		log.Fatalf("Failed to start in background: %v", err)
	}
	if child != nil {
		log.Infof("blazefx started in background with PID %d", child.Pid)
		return
	}
	defer cntxt.Release()

	StartStage()
}

func StartStage() {
	log.Infof("StartStage() started in PID: %d", os.Getpid())

	if os.Getenv("BACKGROUND_PROCESS") == "1" {
		setupRotatingLogger()
	}

	if _, err := ipc.SendStatus(); err == nil {
		log.Infof("blazefx is already running, exiting")
		os.Exit(0)
	}

	defaults, err := utils.LoadDefaults()
	if err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	specs, err := utils.LoadElements()
	if err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	st := stage.NewStage(defaults)
	if err := st.Load(specs); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	log.Infof("Loaded %d elements", len(specs))

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	serverErr := make(chan error, 1)
	go func() {
		log.Infof("Starting socket server")
		serverErr <- ipc.Start(ctx, st, viper.GetString("preview_addr"))
		cancel()
	}()

	st.Run(ctx)
	cancel()

	if err := <-serverErr; err != nil {
		log.Errorf("Server stopped with error: %v", err)
	}
	log.Infof("blazefx exited")
}

func setupRotatingLogger() {
	home := os.Getenv("HOME")
	logDir := filepath.Join(home, ".local", "share", "blazefx")
	logPath := filepath.Join(logDir, "blazefx.log")

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Fatalf("failed to create log directory: %v", err)
	}

	writer, err := rotatelogs.New(
		logPath+".%Y%m%d%H%M",
		rotatelogs.WithLinkName(logPath),
		rotatelogs.WithMaxAge(7*24*time.Hour),
		rotatelogs.WithRotationSize(10*1024*1024),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		log.Fatalf("failed to configure log rotation: %v", err)
	}

	log.SetOutput(writer)
	if !viper.GetBool("debug") {
		log.SetLevel(log.InfoLevel)
	}
}
