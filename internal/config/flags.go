// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a control API address in format [host]:[port]
//	-cloud cloud API base URL
//	-d database DSN
//	-root content root directory
//	-device-id device identifier
//	-firmware-target firmware image target path
//	-c/-config json file path with configs
//	-sync-interval periodic sync interval (e.g., "6h", "30m")
//	-request-timeout cloud request timeout (e.g., "30s", "1m")
//	-download-timeout artifact transfer timeout (e.g., "5m")
//	-log-file daemon log file path
//	-metrics enable prometheus metrics
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("syncd", flag.ContinueOnError)

	var serverAddress NetAddress
	var cloudAddress string
	var databaseDSN string
	var rootDir string
	var deviceID string
	var firmwareTarget string
	var jsonConfigPath string
	var syncInterval time.Duration
	var requestTimeout time.Duration
	var downloadTimeout time.Duration
	var logFile string
	var metricsEnabled bool

	fs.Var(&serverAddress, "a", "Control API address host:port")
	fs.StringVar(&cloudAddress, "cloud", "", "Cloud API base URL")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&rootDir, "root", "", "Content root directory")
	fs.StringVar(&deviceID, "device-id", "", "Device identifier")
	fs.StringVar(&firmwareTarget, "firmware-target", "", "Firmware image target path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Periodic sync interval (e.g., 6h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Cloud request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&downloadTimeout, "download-timeout", 0, "Artifact transfer timeout (e.g., 5m)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.BoolVar(&metricsEnabled, "metrics", false, "Enable prometheus metrics")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			DeviceID:           deviceID,
			FirmwareTargetPath: firmwareTarget,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				RootDir: rootDir,
			},
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		Adapter: Adapter{
			HTTPAddress:     cloudAddress,
			RequestTimeout:  requestTimeout,
			DownloadTimeout: downloadTimeout,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		Device: Device{
			LogFile: logFile,
		},
		Metrics: Metrics{
			Enabled: metricsEnabled,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
