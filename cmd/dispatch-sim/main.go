// dispatch-sim is a local stand-in for the delivery backend: it serves the
// REST surface the agent's gateway calls and publishes the matching broker
// broadcasts, so a full claim race can be exercised on a laptop.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/pflag"

	"service-livreur-client/internal/app"
	"service-livreur-client/internal/domain"
	"service-livreur-client/internal/logx"
	"service-livreur-client/internal/transport/kafka"
)

const (
	topicNewOrders   = "commandes.nouvelles"
	topicAcceptances = "commandes.acceptees"
	personalPrefix   = "livreur."
)

func main() {
	var (
		port    int
		brokers []string
	)
	pflag.IntVarP(&port, "port", "p", 8080, "port to listen on")
	pflag.StringSliceVar(&brokers, "brokers", nil, "kafka broker list (empty disables publishing)")
	pflag.Parse()

	logger := app.NewLogger()

	var producer *kafka.Producer
	if len(brokers) > 0 {
		p, err := kafka.NewProducer(brokers, logger)
		if err != nil {
			log.Fatalf("producer init error: %v", err)
		}
		producer = p
		defer producer.Close()
	} else {
		logger.Warn("no brokers configured, running REST-only")
	}

	state := newSimState()
	state.seedCatalog()

	sim := &simServer{state: state, producer: producer, logger: logger}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           sim.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("dispatch-sim listening", logx.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen error: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down dispatch-sim")
	shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Warn("graceful shutdown error", logx.Any("err", err))
	}
}

type simServer struct {
	state    *simState
	producer *kafka.Producer
	logger   logx.Logger
}

func (s *simServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/livreur", func(r chi.Router) {
		r.Get("/commandes/by-day", s.listOrders)
		r.Get("/commandes/historique-dynamique", s.orderHistory)
		r.Get("/commandes/count-by-day", s.countByDay)
		r.Get("/commandes/count-by-type", s.countByType)
		r.Get("/commande/{id}/details", s.orderDetails)
		r.Post("/commande/{id}/accept", s.acceptOrder)
		r.Put("/commande/{id}/statut", s.updateOrderStatus)
		r.Get("/grandes-commandes", s.listBundles)
		r.Get("/grande-commande/{id}", s.bundleByID)
		r.Post("/grande-commande/{id}/accept", s.acceptBundle)
		r.Get("/{id}/infos", s.profile)
		r.Put("/status", s.updateOnline)
		r.Get("/produit/{id}", s.product)
		r.Get("/boutique/{id}", s.shop)
		r.Get("/adresse/{id}", s.address)
	})

	r.Route("/api/demandes", func(r chi.Router) {
		r.Get("/acceptees", s.listRequests)
		r.Get("/mes-livraisons/{id}", s.myRequests)
		r.Get("/{id}", s.requestByID)
		r.Post("/{id}/accepter", s.acceptRequest)
		r.Put("/{id}/statut", s.updateRequestStatus)
	})

	// seeding surface, not part of the real backend
	r.Route("/sim", func(r chi.Router) {
		r.Post("/commandes", s.seedOrder)
		r.Post("/lots", s.seedBundle)
		r.Post("/demandes", s.seedRequest)
		r.Post("/livreurs", s.seedProfile)
		r.Post("/notifications/{id}", s.seedNotification)
	})

	return r
}

func (s *simServer) publish(topic string, v any) {
	if s.producer == nil {
		return
	}
	if err := s.producer.Publish(topic, v); err != nil {
		s.logger.Warn("publish failed", logx.String("topic", topic), logx.Any("err", err))
	}
}

func urlID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

func queryID(r *http.Request, name string) int64 {
	id, _ := strconv.ParseInt(r.URL.Query().Get(name), 10, 64)
	return id
}

func (s *simServer) listOrders(w http.ResponseWriter, r *http.Request) {
	driverID := queryID(r, "livreurId")
	out := make([]domain.Order, 0)
	for _, o := range s.state.listOrders() {
		if o.LivreurID == 0 || o.LivreurID == driverID {
			out = append(out, o)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *simServer) orderDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errBody("invalid id"))
		return
	}
	o, found := s.state.order(id)
	if !found {
		writeJSON(w, http.StatusNotFound, errBody("not found"))
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (s *simServer) acceptOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errBody("invalid id"))
		return
	}
	driverID := queryID(r, "livreurId")
	o, won := s.state.claimOrder(id, driverID)
	if !won {
		writeJSON(w, http.StatusConflict, errBody("already taken"))
		return
	}
	s.publish(topicAcceptances, o)
	writeJSON(w, http.StatusOK, o)
}

func (s *simServer) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errBody("invalid id"))
		return
	}
	status := domain.OrderStatus(r.URL.Query().Get("statut"))
	if !status.Valid() {
		writeJSON(w, http.StatusBadRequest, errBody("invalid status"))
		return
	}
	if !s.state.setOrderStatus(id, status) {
		writeJSON(w, http.StatusNotFound, errBody("not found"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *simServer) listBundles(w http.ResponseWriter, r *http.Request) {
	driverID := queryID(r, "livreurId")
	out := make([]domain.Bundle, 0)
	for _, b := range s.state.listBundles() {
		if b.LivreurID == 0 || b.LivreurID == driverID {
			out = append(out, b)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *simServer) acceptBundle(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errBody("invalid id"))
		return
	}
	b, won := s.state.claimBundle(id, queryID(r, "livreurId"))
	if !won {
		writeJSON(w, http.StatusConflict, errBody("already taken"))
		return
	}
	for _, o := range b.Orders {
		s.publish(topicAcceptances, o)
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *simServer) listRequests(w http.ResponseWriter, _ *http.Request) {
	out := make([]domain.DeliveryRequest, 0)
	for _, req := range s.state.listRequests() {
		if req.LivreurID == 0 {
			out = append(out, req)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *simServer) myRequests(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errBody("invalid id"))
		return
	}
	out := make([]domain.DeliveryRequest, 0)
	for _, req := range s.state.listRequests() {
		if req.LivreurID == id {
			out = append(out, req)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *simServer) acceptRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errBody("invalid id"))
		return
	}
	req, won := s.state.claimRequest(id, queryID(r, "livreurId"))
	if !won {
		writeJSON(w, http.StatusConflict, errBody("already taken"))
		return
	}
	s.publish(topicAcceptances, req)
	writeJSON(w, http.StatusOK, req)
}

func (s *simServer) updateRequestStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errBody("invalid id"))
		return
	}
	status := domain.RequestStatus(r.URL.Query().Get("statut"))
	if !status.Valid() {
		writeJSON(w, http.StatusBadRequest, errBody("invalid status"))
		return
	}
	if !s.state.setRequestStatus(id, status) {
		writeJSON(w, http.StatusNotFound, errBody("not found"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *simServer) requestByID(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errBody("invalid id"))
		return
	}
	req, found := s.state.request(id)
	if !found {
		writeJSON(w, http.StatusNotFound, errBody("not found"))
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (s *simServer) bundleByID(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errBody("invalid id"))
		return
	}
	b, found := s.state.bundle(id)
	if !found {
		writeJSON(w, http.StatusNotFound, errBody("not found"))
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *simServer) orderHistory(w http.ResponseWriter, r *http.Request) {
	driverID := queryID(r, "livreurId")
	out := make([]domain.Order, 0)
	for _, o := range s.state.listOrders() {
		if o.LivreurID == driverID {
			out = append(out, o)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *simServer) countByDay(w http.ResponseWriter, _ *http.Request) {
	n := 0
	for _, o := range s.state.listOrders() {
		if o.Status == domain.OrderConfirmed {
			n++
		}
	}
	writeJSON(w, http.StatusOK, n)
}

func (s *simServer) countByType(w http.ResponseWriter, r *http.Request) {
	driverID := queryID(r, "livreurId")
	want := domain.DeliveryType(r.URL.Query().Get("type"))
	n := 0
	for _, o := range s.state.listOrders() {
		if o.LivreurID == driverID && o.Type == want {
			n++
		}
	}
	writeJSON(w, http.StatusOK, n)
}

func (s *simServer) profile(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errBody("invalid id"))
		return
	}
	p, found := s.state.profile(id)
	if !found {
		writeJSON(w, http.StatusNotFound, errBody("not found"))
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *simServer) updateOnline(w http.ResponseWriter, r *http.Request) {
	id := queryID(r, "livreurId")
	online := r.URL.Query().Get("online") == "true"
	p, found := s.state.profile(id)
	if !found {
		writeJSON(w, http.StatusNotFound, errBody("not found"))
		return
	}
	p.Online = online
	s.state.putProfile(p)
	w.WriteHeader(http.StatusNoContent)
}

func (s *simServer) product(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errBody("invalid id"))
		return
	}
	p, found := s.state.product(id)
	if !found {
		writeJSON(w, http.StatusNotFound, errBody("not found"))
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *simServer) shop(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errBody("invalid id"))
		return
	}
	sh, found := s.state.shop(id)
	if !found {
		writeJSON(w, http.StatusNotFound, errBody("not found"))
		return
	}
	writeJSON(w, http.StatusOK, sh)
}

func (s *simServer) address(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errBody("invalid id"))
		return
	}
	a, found := s.state.address(id)
	if !found {
		writeJSON(w, http.StatusNotFound, errBody("not found"))
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *simServer) seedOrder(w http.ResponseWriter, r *http.Request) {
	var o domain.Order
	if !readJSON(w, r, &o) {
		return
	}
	if o.Status == "" {
		o.Status = domain.OrderConfirmed
	}
	s.state.putOrder(o)
	s.publish(topicNewOrders, o)
	writeJSON(w, http.StatusCreated, o)
}

func (s *simServer) seedBundle(w http.ResponseWriter, r *http.Request) {
	var b domain.Bundle
	if !readJSON(w, r, &b) {
		return
	}
	if b.Status == "" {
		b.Status = domain.BundlePending
	}
	s.state.putBundle(b)
	s.publish(topicNewOrders, b)
	writeJSON(w, http.StatusCreated, b)
}

func (s *simServer) seedRequest(w http.ResponseWriter, r *http.Request) {
	var req domain.DeliveryRequest
	if !readJSON(w, r, &req) {
		return
	}
	if req.Status == "" {
		req.Status = domain.RequestPending
	}
	if req.ItemType == "" {
		req.ItemType = "colis"
	}
	s.state.putRequest(req)
	s.publish(topicNewOrders, req)
	writeJSON(w, http.StatusCreated, req)
}

func (s *simServer) seedProfile(w http.ResponseWriter, r *http.Request) {
	var p domain.DriverProfile
	if !readJSON(w, r, &p) {
		return
	}
	s.state.putProfile(p)
	writeJSON(w, http.StatusCreated, p)
}

type notificationBody struct {
	Message string `json:"message"`
}

func (s *simServer) seedNotification(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errBody("invalid id"))
		return
	}
	var body notificationBody
	if !readJSON(w, r, &body) {
		return
	}
	s.publish(personalPrefix+strconv.FormatInt(id, 10), body.Message)
	w.WriteHeader(http.StatusAccepted)
}
