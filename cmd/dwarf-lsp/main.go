// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"os"

	"dwarf/internal/lsp"
	"dwarf/internal/types"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

const lsName = "dwarf"

var (
	version = "0.1.0"
	handler protocol.Handler
)

func main() {
	modelPath := flag.String("model", "", "domain model catalog (YAML)")
	flag.Parse()

	// 1 = info, logged to stderr
	commonlog.Configure(1, nil)
	log := commonlog.GetLogger("dwarf.lsp")

	var model types.Catalog
	if *modelPath != "" {
		m, err := types.LoadModel(*modelPath)
		if err != nil {
			log.Errorf("could not load model: %s", err)
			os.Exit(1)
		}
		model = m
	}

	dwarfHandler := lsp.NewDwarfHandler(model)

	handler = protocol.Handler{
		Initialize:                     dwarfHandler.Initialize,
		Initialized:                    dwarfHandler.Initialized,
		Shutdown:                       dwarfHandler.Shutdown,
		SetTrace:                       dwarfHandler.SetTrace,
		TextDocumentDidOpen:            dwarfHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           dwarfHandler.TextDocumentDidClose,
		TextDocumentDidChange:          dwarfHandler.TextDocumentDidChange,
		TextDocumentCompletion:         dwarfHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: dwarfHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Infof("starting %s language server %s", lsName, version)
	if err := s.RunStdio(); err != nil {
		log.Errorf("language server stopped: %s", err)
		os.Exit(1)
	}
}
