//go:build js && wasm

package main

import (
	"fmt"

	"slicepuzzle/src/logx"
	"slicepuzzle/src/ui/gui"
	"slicepuzzle/src/ui/gui/gbase/gconf"
)

func GetLogger() *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString("debug"),
		false,
		true,
	)
	l.InitLogger(nil)
	return l
}

func RunGUI() error {
	logger := GetLogger()
	cfg, err := gconf.NewGUIConfig("")
	if err != nil {
		logger.Errorf("error load config: %v", err)
		def := gconf.DefaultConfig()
		cfg = &def
	}
	cfg.Watch = false
	g, err := gui.NewGUI(cfg, logger)
	if err != nil {
		logger.Errorf("error init GUI: %v", err)
		return fmt.Errorf("error init GUI: %w", err)
	}
	return g.Run()
}

func main() {
	if err := RunGUI(); err != nil {
		fmt.Println(err)
	}
}
