package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/kardianos/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/briis/secspy/pkg/models"
	"github.com/briis/secspy/pkg/secspy"
)

// Variables to hold flag values
var (
	expHost       string
	expPort       int
	expUser       string
	expPass       string
	expSSL        bool
	expListen     string
	serviceAction string // "install", "uninstall", "start", "stop"
)

// --- SERVICE WRAPPER ---

// program implements the kardianos/service interface
type program struct {
	exit   chan struct{}
	server *http.Server
	api    *secspy.Client
}

func (p *program) Start(s service.Service) error {
	// Start should not block. Do the actual work async.
	p.exit = make(chan struct{})
	go p.run()
	return nil
}

func (p *program) run() {
	registry := prometheus.NewRegistry()
	registry.MustRegister(&SecSpyCollector{Client: p.api})

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		ErrorLog: log.Default(),
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)

	p.server = &http.Server{
		Addr:    expListen,
		Handler: mux,
	}

	log.Printf("SecuritySpy exporter listening on %s", expListen)

	if err := p.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("HTTP server error: %v", err)
	}
}

func (p *program) Stop(s service.Service) error {
	// Stop should not block. Signal the app to stop.
	log.Println("Stopping service...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if p.server != nil {
		if err := p.server.Shutdown(ctx); err != nil {
			log.Printf("Server forced to shutdown: %v", err)
		}
	}
	close(p.exit)
	return nil
}

// --- COLLECTOR ---

// SecSpyCollector scrapes the server on every Prometheus pull.
type SecSpyCollector struct {
	Client *secspy.Client
	Mutex  sync.Mutex
}

var (
	upDesc = prometheus.NewDesc(
		"secspy_up", "Was the last scrape successful.", nil, nil,
	)
	scrapeDurationDesc = prometheus.NewDesc(
		"secspy_scrape_duration_seconds", "Time taken to scrape the server.", nil, nil,
	)
	serverInfoDesc = prometheus.NewDesc(
		"secspy_server_info", "Server identity (always 1).", []string{"name", "uuid", "version"}, nil,
	)
	cameraOnlineDesc = prometheus.NewDesc(
		"secspy_camera_online", "Camera connection status.", []string{"number", "name", "device"}, nil,
	)
	cameraArmedDesc = prometheus.NewDesc(
		"secspy_camera_armed", "Arming status per recording mode.", []string{"number", "name", "mode"}, nil,
	)
	cameraPTZDesc = prometheus.NewDesc(
		"secspy_camera_ptz_capable", "Whether the camera is PTZ capable.", []string{"number", "name"}, nil,
	)
	cameraCountDesc = prometheus.NewDesc(
		"secspy_cameras_total", "Total cameras grouped by state.", []string{"state"}, nil,
	)
)

func (c *SecSpyCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- upDesc
	ch <- scrapeDurationDesc
	ch <- serverInfoDesc
	ch <- cameraOnlineDesc
	ch <- cameraArmedDesc
	ch <- cameraPTZDesc
	ch <- cameraCountDesc
}

func (c *SecSpyCollector) Collect(ch chan<- prometheus.Metric) {
	c.Mutex.Lock()
	defer c.Mutex.Unlock()
	start := time.Now()
	success := 1.0

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if info, err := c.Client.GetServerInfo(ctx); err == nil {
		ch <- prometheus.MustNewConstMetric(serverInfoDesc, prometheus.GaugeValue, 1,
			info.Name, info.UUID, info.Version)
	} else {
		success = 0.0
		log.Printf("Error scraping server info: %v", err)
	}

	if cameras, err := c.Client.GetCameras(ctx); err == nil {
		stateCounts := map[string]float64{"online": 0, "offline": 0}
		for _, cam := range cameras {
			online := 0.0
			state := "offline"
			if cam.Online() {
				online = 1.0
				state = "online"
			}
			stateCounts[state]++

			ch <- prometheus.MustNewConstMetric(cameraOnlineDesc, prometheus.GaugeValue, online,
				cam.Number, cam.Name, cam.DeviceName)

			for _, mode := range []models.RecordingMode{
				models.RecordingModeAction,
				models.RecordingModeContinuous,
				models.RecordingModeMotion,
			} {
				armed := 0.0
				if cam.Armed(mode) {
					armed = 1.0
				}
				ch <- prometheus.MustNewConstMetric(cameraArmedDesc, prometheus.GaugeValue, armed,
					cam.Number, cam.Name, string(mode))
			}

			ptz := 0.0
			if cam.HasPTZ() {
				ptz = 1.0
			}
			ch <- prometheus.MustNewConstMetric(cameraPTZDesc, prometheus.GaugeValue, ptz,
				cam.Number, cam.Name)
		}
		for state, count := range stateCounts {
			ch <- prometheus.MustNewConstMetric(cameraCountDesc, prometheus.GaugeValue, count, state)
		}
	} else {
		success = 0.0
		log.Printf("Error scraping cameras: %v", err)
	}

	ch <- prometheus.MustNewConstMetric(upDesc, prometheus.GaugeValue, success)
	ch <- prometheus.MustNewConstMetric(scrapeDurationDesc, prometheus.GaugeValue, time.Since(start).Seconds())
}

// --- COMMAND ---

var exporterCmd = &cobra.Command{
	Use:   "exporter",
	Short: "Start a Prometheus exporter for camera and server state",
	Long: `Starts a long-running HTTP server that exposes SecuritySpy metrics.
Can be installed as a system service.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := secspy.Config{
			Host:     expHost,
			Port:     expPort,
			Username: expUser,
			Password: expPass,
			UseSSL:   expSSL,
		}

		svcConfig := &service.Config{
			Name:        "secspy-exporter",
			DisplayName: "SecuritySpy Prometheus Exporter",
			Description: "Exposes SecuritySpy camera and server metrics to Prometheus",
			Arguments: []string{
				"exporter",
				"--host", expHost,
				"--port", fmt.Sprintf("%d", expPort),
				"--username", expUser,
				"--password", expPass,
				"--listen", expListen,
			},
		}
		if expSSL {
			svcConfig.Arguments = append(svcConfig.Arguments, "--ssl")
		}

		prg := &program{
			api: secspy.New(cfg),
		}

		s, err := service.New(prg, svcConfig)
		if err != nil {
			log.Fatal(err)
		}

		// Handle service control actions (install, start, stop, uninstall)
		if serviceAction != "" {
			if serviceAction == "install" {
				if expHost == "" || expUser == "" || expPass == "" {
					log.Fatal("Error: --host, --username and --password are required to install the service.")
				}
			}

			if err := service.Control(s, serviceAction); err != nil {
				log.Fatalf("Failed to %s service: %v", serviceAction, err)
			}
			fmt.Printf("Service action '%s' completed successfully.\n", serviceAction)
			return
		}

		// Run the service (blocking). This happens when the service
		// manager starts the binary, or when run interactively.
		logger, err := s.Logger(nil)
		if err != nil {
			log.Fatal(err)
		}
		if err = s.Run(); err != nil {
			logger.Error(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(exporterCmd)

	exporterCmd.Flags().StringVar(&expHost, "host", "", "SecuritySpy server address")
	exporterCmd.Flags().IntVar(&expPort, "port", 8000, "SecuritySpy server port")
	exporterCmd.Flags().StringVar(&expUser, "username", "", "Username")
	exporterCmd.Flags().StringVar(&expPass, "password", "", "Password")
	exporterCmd.Flags().BoolVar(&expSSL, "ssl", false, "Use HTTPS")
	exporterCmd.Flags().StringVar(&expListen, "listen", ":9155", "Address to expose /metrics on")
	exporterCmd.Flags().StringVar(&serviceAction, "service", "", "Service action: install, uninstall, start, stop")

	_ = exporterCmd.MarkFlagRequired("host")
}
