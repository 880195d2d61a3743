package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/config"
	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/server"
	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/util"
)

var (
	port    = flag.Int("port", 0, "puerto del servidor (config.toml tiene prioridad si define server.port)")
	devMode = flag.Bool("dev", false, "modo desarrollo")
	dataDir = flag.String("dataDir", "", "directorio de datos (sobrescribe la configuración)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  Dashboard TD 2026 - Transformación Digital")
	fmt.Println("==========================================")

	cfg, info, err := config.LoadConfigWithInfo()
	if err != nil {
		log.Printf("No fue posible cargar la configuración, usando valores por defecto: %v", err)
		cfg = config.DefaultConfig()
		info = config.LoadConfigInfo{}
	}

	// Flags override config unless the file pinned the value.
	if *port > 0 && !info.PortSpecified {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	resolvedDataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		log.Printf("No fue posible crear el directorio de datos: %v", err)
	} else {
		fmt.Printf("Directorio de datos: %s\n", resolvedDataDir)
	}

	srv := server.NewServer(cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	go func() {
		fmt.Printf("Iniciando servicio en el puerto %d ...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("El servicio no pudo iniciar: %v", err)
		}
	}()

	if !cfg.Server.DevMode {
		fmt.Printf("Abriendo el navegador: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("No fue posible abrir el navegador, visite manualmente: %s\n", url)
		}
	} else {
		fmt.Printf("Modo desarrollo: visite %s\n", url)
	}

	fmt.Println("\nPresione Ctrl+C para detener el servicio...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nCerrando el servicio...")
	if err := srv.Close(); err != nil {
		log.Printf("Error al cerrar la base de datos: %v", err)
	}
}
