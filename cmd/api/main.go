package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	_ "github.com/Flarenzy/subnet-calc/docs"
	"github.com/Flarenzy/subnet-calc/internal/api"
)

//	@title			Subnet Calculator API
//	@version		1.0
//	@description	IPv4 subnet calculator: single-network reports and VLSM partitioning.

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:4040
//	@BasePath	/

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := api.LoadConfig()

	if err := api.Run(ctx, cfg); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
