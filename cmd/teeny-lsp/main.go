// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"os"

	"teeny/internal/compiler"
	"teeny/internal/lsp"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

const lsName = "teeny"

var (
	version = "0.1.0"
	handler protocol.Handler
)

func main() {
	verbosity := flag.Int("verbosity", 1, "log verbosity (-4 silences, 2 and above logs debug output)")
	logPath := flag.String("log", "", "log file (default stderr)")
	maxDepth := flag.Int("max-depth", 256, "maximum nesting depth of if and while blocks")
	flag.Parse()

	// stdout carries the protocol, so logs go to stderr or a file
	if *logPath != "" {
		commonlog.Configure(*verbosity, logPath)
	} else {
		commonlog.Configure(*verbosity, nil)
	}
	log := commonlog.GetLogger("teeny.lsp")

	teenyHandler := lsp.NewTeenyHandler(version, compiler.WithMaxDepth(*maxDepth))

	handler = protocol.Handler{
		Initialize:                     teenyHandler.Initialize,
		Initialized:                    teenyHandler.Initialized,
		Shutdown:                       teenyHandler.Shutdown,
		SetTrace:                       teenyHandler.SetTrace,
		TextDocumentDidOpen:            teenyHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           teenyHandler.TextDocumentDidClose,
		TextDocumentDidChange:          teenyHandler.TextDocumentDidChange,
		TextDocumentCompletion:         teenyHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: teenyHandler.TextDocumentSemanticTokensFull,
		TextDocumentDefinition:         teenyHandler.TextDocumentDefinition,
		TextDocumentFormatting:         teenyHandler.TextDocumentFormatting,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Infof("starting %s language server %s", lsName, version)
	if err := s.RunStdio(); err != nil {
		log.Errorf("language server stopped: %s", err)
		os.Exit(1)
	}
}
