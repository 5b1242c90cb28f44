// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated means neither an HTTP nor a gRPC listen
	// address was configured.
	errNoServersAreCreated = errors.New("no listen address configured for HTTP or gRPC")

	// errForcedStop is returned when in-flight RPCs outlive the shutdown
	// deadline and the gRPC server is stopped hard.
	errForcedStop = errors.New("gRPC server stopped before in-flight RPCs finished")
)
