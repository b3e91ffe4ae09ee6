package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/joaoafonso2004/TWfrontbackend/internal/config"
	"github.com/joaoafonso2004/TWfrontbackend/internal/handlers"
	"github.com/joaoafonso2004/TWfrontbackend/internal/middleware"
	"github.com/joaoafonso2004/TWfrontbackend/internal/web"
)

type Store interface {
	handlers.StudentStore
	handlers.CourseStore
}

// SetupRouter wires every endpoint to store and wraps the result in CORS.
func SetupRouter(store Store, cfg config.Config) http.Handler {
	router := mux.NewRouter()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewMetrics(registry)

	router.Use(middleware.Logging, metrics.Middleware)

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Server is healthy"))
	}).Methods("GET")
	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods("GET")

	router.HandleFunc("/", web.Index).Methods("GET")
	router.PathPrefix("/static/").Handler(web.Static()).Methods("GET")

	studentHandler := handlers.NewStudentHandler(store, cfg.Timeout)
	router.HandleFunc("/alunos", studentHandler.GetStudents).Methods("GET")
	router.HandleFunc("/alunos/nome/{nome}", studentHandler.GetStudentsByName).Methods("GET")
	router.HandleFunc("/alunos/{id}", studentHandler.GetStudentByID).Methods("GET")
	router.HandleFunc("/alunos", studentHandler.CreateStudent).Methods("POST")
	router.HandleFunc("/alunos/{id}", studentHandler.UpdateStudent).Methods("PUT")
	router.HandleFunc("/alunos/{id}", studentHandler.DeleteStudent).Methods("DELETE")

	courseHandler := handlers.NewCourseHandler(store, cfg.Timeout)
	router.HandleFunc("/cursos", courseHandler.GetCourses).Methods("GET")
	router.HandleFunc("/cursos", courseHandler.CreateCourse).Methods("POST")
	router.HandleFunc("/cursos/{id}", courseHandler.UpdateCourse).Methods("PUT")
	router.HandleFunc("/cursos/{id}", courseHandler.DeleteCourse).Methods("DELETE")

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.Origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(router)
}
