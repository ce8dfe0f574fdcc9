// File path: cmd/qsd/main.go
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/docsmith/quickstart/internal/api"
	"github.com/docsmith/quickstart/internal/catalog"
	"github.com/docsmith/quickstart/internal/common"
	"github.com/docsmith/quickstart/internal/onboarding"
)

func main() {
	logger := common.Logger()

	if err := godotenv.Load(); err != nil {
		logger.Warn("quickstart: .env file not loaded", "error", err)
	} else {
		logger.Info("quickstart: environment loaded from .env")
	}

	addr := flag.String("addr", ":8084", "listen address")
	catalogPath := flag.String("catalog", "", "path to the SQLite snapshot catalog (empty uses QUICKSTART_CATALOG_PATH or the default)")
	noCatalog := flag.Bool("no-catalog", false, "disable snapshot persistence")
	flag.Parse()

	logger.Info("quickstart: startup initiated", "addr", *addr)

	var store *catalog.Store
	if !*noCatalog {
		opened, err := catalog.Open(*catalogPath)
		if err != nil {
			logger.Error("quickstart: catalog open failed", "error", err)
			fmt.Println("catalog error:", err)
			os.Exit(1)
		}
		store = opened
		defer store.Close()
	}

	server, err := api.NewServer(onboarding.DefaultRegistry(), store)
	if err != nil {
		logger.Error("quickstart: server construction failed", "error", err)
		fmt.Println("server error:", err)
		os.Exit(1)
	}

	logger.Info("quickstart: server listening", "addr", *addr, "health", "/healthz")
	fmt.Printf("Serving on %s\n", *addr)
	reachable := *addr
	if strings.HasPrefix(reachable, ":") {
		reachable = "localhost" + reachable
	}
	logger.Info("quickstart: verify reachability", "suggestion", fmt.Sprintf("curl http://%s/healthz", reachable))
	if err := http.ListenAndServe(*addr, server); err != nil {
		logger.Error("quickstart: server stopped", "error", err)
		fmt.Println("server stopped:", err)
	}
}
