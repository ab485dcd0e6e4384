// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package supervisor provides process supervision for Marquee using suture v4.

The supervisor tree organizes services into two layers for failure isolation:

	RootSupervisor ("marquee")
	├── DataSupervisor ("data-layer")
	│   └── ReloadService (if dataset.reload_interval > 0)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A failing dataset reload is restarted with backoff inside the data layer
while the API layer keeps serving the last engine that built successfully.

Supervisor events are logged through sutureslog, bridged into zerolog by
logging.NewSlogLogger:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}
*/
package supervisor
