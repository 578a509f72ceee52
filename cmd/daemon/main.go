// The daemon exposes the engine on the session bus for desktop
// frontends that prefer IPC over linking the shared library. It loads
// the user's settings, pushes them into the engine, and serves key
// events until terminated.
package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/godbus/dbus/v5"
	"github.com/username/vikey/internal/config"
	"github.com/username/vikey/internal/engine"
	"github.com/username/vikey/internal/ffi"
)

const (
	serviceName = "com.github.vikey.core"
	objectPath  = "/Engine"
)

// InputEngine is the D-Bus object that receives key events from the
// frontend.
type InputEngine struct {
	logger *log.Logger
}

// ProcessKey handles one key event.
// Input: virtual keycode plus caps/ctrl/shift state.
// Output: action (0 none, 1 send, 2 restore), backspace count, text.
func (e *InputEngine) ProcessKey(keycode uint16, caps, ctrl, shift bool) (uint8, uint8, string, *dbus.Error) {
	result := ffi.KeyExt(keycode, caps, ctrl, shift)

	if e.logger != nil {
		e.logger.Printf("Key: %-5d caps=%-5v shift=%-5v | Action: %d | Backspace: %d | Text: %q",
			keycode, caps, shift, result.Action, result.Backspace, string(result.Chars))
	}

	return uint8(result.Action), uint8(result.Backspace), string(result.Chars), nil
}

// SetMethod selects the trigger scheme (0=Telex, 1=VNI).
func (e *InputEngine) SetMethod(m uint8) *dbus.Error {
	ffi.SetMethod(m)
	return nil
}

// SetEnabled toggles pass-through mode.
func (e *InputEngine) SetEnabled(enabled bool) *dbus.Error {
	ffi.SetEnabled(enabled)
	return nil
}

// Reset clears the session buffer.
func (e *InputEngine) Reset() *dbus.Error {
	ffi.Clear()
	return nil
}

func main() {
	// 1. Connect to the session bus.
	conn, err := dbus.SessionBus()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to connect to session bus:", err)
		os.Exit(1)
	}
	defer conn.Close()

	// 2. Register the service name.
	reply, err := conn.RequestName(serviceName, dbus.NameFlagDoNotQueue)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to request name:", err)
		os.Exit(1)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		fmt.Fprintln(os.Stderr, "Name already taken - another instance may be running")
		os.Exit(1)
	}

	// 3. Load settings and bring up the engine.
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Using default config: %v", err)
		cfg = config.Default()
	}

	ffi.Init()
	ffi.SetMethod(uint8(cfg.InputMethod))
	ffi.SetEnabled(cfg.Enabled)
	ffi.SetModernTone(cfg.ModernTone)
	ffi.SetEscRestore(cfg.EscRestore)
	for _, s := range cfg.Shortcuts {
		ffi.AddShortcut(s.Trigger, s.Expansion, s.Priority)
	}

	// 4. Optional key logging.
	var logger *log.Logger
	if cfg.LogFile != "" {
		logFile, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		} else {
			logger = log.New(logFile, "", log.LstdFlags)
			defer logFile.Close()
		}
	}

	// 5. Export the engine object.
	inputEngine := &InputEngine{logger: logger}
	if err := conn.Export(inputEngine, dbus.ObjectPath(objectPath), serviceName); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to export object:", err)
		os.Exit(1)
	}

	methodName := "Telex"
	if engine.Method(cfg.InputMethod) == engine.MethodVNI {
		methodName = "VNI"
	}
	fmt.Println("vikey daemon is running")
	fmt.Printf("  Service:      %s\n", serviceName)
	fmt.Printf("  Object Path:  %s\n", objectPath)
	fmt.Printf("  Input Method: %s\n", methodName)
	fmt.Printf("  Shortcuts:    %d\n", len(cfg.Shortcuts))

	// 6. Graceful shutdown.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	fmt.Println("Shutting down...")
}
