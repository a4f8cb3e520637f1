// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// It wires configuration, the ledger storage, the server adapter, client
// services, the lifecycle runner and the background ledger pruner into a
// single process lifecycle shared by the CLI commands and the terminal UI.
package client
