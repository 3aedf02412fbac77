package main

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"fmt"
	"log"
	"math/big"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"lokarni/pkg/assets"
	"lokarni/pkg/catalog"
	"lokarni/pkg/credentials"
	"lokarni/pkg/detail"
	"lokarni/pkg/events"
	"lokarni/pkg/importer"
	"lokarni/pkg/library"

	_ "lokarni/docs"
)

// @title           Lokarni Gateway API
// @version         1.0
// @description     Local gateway for the Lokarni AI model asset library - imports, edits, favorites, and live change events

// @BasePath  /

// @schemes   http https

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	client := catalog.NewHTTPClient(
		envOr("CATALOG_BASE_URL", "http://localhost:8000"),
		envDuration("CATALOG_TIMEOUT", 30*time.Second),
	)

	credStore := connectCredentialStore()
	store := assets.NewStore()
	hub := events.NewHub()

	libraryService := library.NewLibraryService(client, store)
	libraryHandler := library.NewLibraryHandler(libraryService, hub)

	importService := importer.NewImportService(client, credStore)
	importHandler := importer.NewImportHandler(importService, store, hub)

	sessions := detail.NewManager()
	detailHandler := detail.NewDetailHandler(sessions, client, store, hub)

	eventsHandler := events.NewHandler(hub)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.New(corsConfigFromEnv()))

	libraryHandler.RegisterRoutes(router)
	importHandler.RegisterRoutes(router)
	detailHandler.RegisterRoutes(router)

	// WebSocket change feed for connected views
	router.GET("/ws/events", eventsHandler.HandleWebSocketGin)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	settings := loadTLSSettingsFromEnv()
	if err := settings.Validate(); err != nil {
		log.Fatalf("TLS settings invalid: %v", err)
	}

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		if settings.EnableTLS {
			port = "8443"
		} else {
			port = "8080"
		}
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		if !settings.EnableTLS {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("listen (HTTP): %v", err)
			}
			return
		}

		tlsConfig, err := buildTLSConfig(settings)
		if err != nil {
			log.Fatalf("TLS setup error: %v", err)
		}
		srv.TLSConfig = tlsConfig

		if err := srv.ListenAndServeTLS("", ""); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen (TLS): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

// connectCredentialStore wires the durable API key slot against redis.
// The gateway stays usable without it; only key persistence is lost.
func connectCredentialStore() *credentials.Store {
	rdb := redis.NewClient(&redis.Options{
		Addr:     envOr("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable, API key persistence disabled: %v", err)
		return credentials.NewStore()
	}
	return credentials.NewStore(credentials.NewRedisSink(rdb))
}

func corsConfigFromEnv() cors.Config {
	allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	var origins []string
	if allowedOrigins == "" {
		origins = []string{"*"}
	} else {
		parts := strings.Split(allowedOrigins, ",")
		origins = make([]string, 0, len(parts))
		for _, p := range parts {
			o := strings.TrimSpace(p)
			if o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) == 0 {
			origins = []string{"*"}
		}
	}

	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: strings.EqualFold(os.Getenv("CORS_ALLOW_CREDENTIALS"), "true"),
		MaxAge:           12 * time.Hour,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid %s %q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

// TLSSettings holds environment-driven TLS configuration. A local gateway
// defaults to plain HTTP; production deployments must bring certificates.
type TLSSettings struct {
	EnableTLS       bool
	CertPath        string
	KeyPath         string
	Env             string
	AllowSelfSigned bool
}

// loadTLSSettingsFromEnv reads TLS settings from environment variables:
// - ENABLE_TLS: true/false (default false)
// - TLS_CERT_PATH / TLS_KEY_PATH: file paths to PEM cert/key
// - APP_ENV: "production" or "development"
// - TLS_SELF_SIGNED: true/false (dev convenience)
func loadTLSSettingsFromEnv() TLSSettings {
	env := strings.ToLower(strings.TrimSpace(os.Getenv("APP_ENV")))
	if env == "" {
		env = "development"
	}

	enableTLS := strings.EqualFold(os.Getenv("ENABLE_TLS"), "true")
	if env == "production" {
		enableTLS = true
	}

	return TLSSettings{
		EnableTLS:       enableTLS,
		CertPath:        os.Getenv("TLS_CERT_PATH"),
		KeyPath:         os.Getenv("TLS_KEY_PATH"),
		Env:             env,
		AllowSelfSigned: !strings.EqualFold(os.Getenv("TLS_SELF_SIGNED"), "false"),
	}
}

// Validate ensures TLS settings are safe for the selected environment.
func (s TLSSettings) Validate() error {
	if s.Env == "production" {
		if s.CertPath == "" || s.KeyPath == "" {
			return fmt.Errorf("TLS_CERT_PATH and TLS_KEY_PATH are required in production")
		}
	}
	return nil
}

// buildTLSConfig loads the configured key pair, falling back to a
// self-signed certificate in development when no files are given.
func buildTLSConfig(s TLSSettings) (*tls.Config, error) {
	if s.CertPath != "" && s.KeyPath != "" {
		cert, err := tls.LoadX509KeyPair(s.CertPath, s.KeyPath)
		if err != nil {
			return nil, err
		}
		return &tls.Config{Certificates: []tls.Certificate{cert}, MinVersion: tls.VersionTLS12}, nil
	}

	if s.Env != "production" && s.AllowSelfSigned {
		cert, err := generateSelfSignedCert()
		if err != nil {
			return nil, err
		}
		return &tls.Config{Certificates: []tls.Certificate{cert}, MinVersion: tls.VersionTLS12}, nil
	}

	return nil, fmt.Errorf("no TLS certificates available")
}

// generateSelfSignedCert creates a minimal self-signed certificate for
// localhost usage.
func generateSelfSignedCert() (tls.Certificate, error) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return tls.Certificate{}, err
	}

	serialNumberLimit := new(big.Int).Lsh(big.NewInt(1), 128)
	serialNumber, err := rand.Int(rand.Reader, serialNumberLimit)
	if err != nil {
		return tls.Certificate{}, err
	}

	tmpl := x509.Certificate{
		SerialNumber:          serialNumber,
		Subject:               pkix.Name{CommonName: "localhost"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(365 * 24 * time.Hour),
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		DNSNames:              []string{"localhost"},
		IPAddresses:           []net.IP{net.ParseIP("127.0.0.1")},
		BasicConstraintsValid: true,
	}

	certDER, err := x509.CreateCertificate(rand.Reader, &tmpl, &tmpl, &priv.PublicKey, priv)
	if err != nil {
		return tls.Certificate{}, err
	}

	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: certDER})
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(priv)})

	return tls.X509KeyPair(certPEM, keyPEM)
}
