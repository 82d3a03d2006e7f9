package main

import (
	"fmt"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/gorilla/mux"

	"leotclient/internal/config"
)

// Дев-прокси: принимает /api/* и пересылает на шлюз со срезанным
// префиксом, как прокси из дев-сборки браузерного клиента.
func main() {
	cfg := config.LoadConfig()

	target, err := url.Parse(cfg.ProxyTarget)
	if err != nil {
		log.Fatalf("Неверный PROXY_TARGET: %v", err)
	}

	proxy := httputil.NewSingleHostReverseProxy(target)
	baseDirector := proxy.Director
	proxy.Director = func(r *http.Request) {
		baseDirector(r)
		r.Host = target.Host
	}
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		log.Printf("Ошибка проксирования %s: %v", r.URL.Path, err)
		w.WriteHeader(http.StatusBadGateway)
	}

	router := mux.NewRouter()
	router.PathPrefix("/api/").Handler(http.StripPrefix("/api", proxy))

	addr := fmt.Sprintf(":%d", cfg.ProxyPort)
	fmt.Printf("Прокси запущен на %s, цель: %s\n", addr, cfg.ProxyTarget)

	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Ошибка запуска прокси: %v", err)
	}
}
