/*
 * HP16C - Main program
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	getopt "github.com/pborman/getopt/v2"
	parser "github.com/rcornwell/hp16c/command/parser"
	reader "github.com/rcornwell/hp16c/command/reader"
	config "github.com/rcornwell/hp16c/config/configparser"
	core "github.com/rcornwell/hp16c/emu/core"
	logger "github.com/rcornwell/hp16c/util/logger"

	_ "github.com/rcornwell/hp16c/config/debugconfig"
)

const defaultConfig = "hp16c.cfg"

func main() {
	optConfig := getopt.StringLong("config", 'c', defaultConfig, "Configuration file")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optDebug := getopt.BoolLong("debug", 'd', "Log debug to console")
	optWordSize := getopt.IntLong("wordsize", 'w', 0, "Word size in bits, 1 to 128")
	optBase := getopt.StringLong("base", 'b', "", "Number base, bin, oct, dec or hex")
	optROM := getopt.StringLong("rom", 'r', "", "ROM image file")
	optHistory := getopt.StringLong("history", 0, "", "Line editor history file")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.SetParameters("[command ...]")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var logFile io.Writer
	if *optLogFile != "" {
		file, err := os.Create(*optLogFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to create log file: "+err.Error())
			os.Exit(1)
		}
		defer file.Close()
		logFile = file
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelInfo)
	if *optDebug {
		programLevel.Set(slog.LevelDebug)
	}
	Logger := slog.New(logger.NewHandler(logFile, &slog.HandlerOptions{Level: programLevel}, *optDebug))
	slog.SetDefault(Logger)

	Logger.Info("HP16C Started")

	// Missing default configuration is fine, a named one must exist.
	_, err := os.Stat(*optConfig)
	switch {
	case err == nil:
		err = config.LoadConfigFile(*optConfig)
		if err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
	case os.IsNotExist(err) && *optConfig == defaultConfig:
	default:
		Logger.Error("Configuration file " + *optConfig + " can't be found")
		os.Exit(1)
	}

	settings := core.Defaults
	if *optWordSize != 0 {
		settings.WordSize = *optWordSize
	}
	if *optBase != "" {
		settings.Base, err = core.ParseBase(*optBase)
		if err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
	}
	if *optROM != "" {
		settings.ROMFile = *optROM
	}
	if *optHistory != "" {
		settings.HistoryFile = *optHistory
	}

	calc, err := core.New(settings, os.Stdout)
	if err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}

	// Arguments are run as a single command line.
	if args := getopt.Args(); len(args) != 0 {
		_, err := parser.ProcessCommand(strings.Join(args, " "), calc)
		if err != nil {
			fmt.Println("Error: " + err.Error())
		}
		fmt.Println(calc.Display())
		if err != nil {
			os.Exit(1)
		}
		return
	}

	err = reader.Run(calc)
	if err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}
}
