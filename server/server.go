package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"chemcalc/calculator"
	"chemcalc/model"
)

type Server struct {
	cfg      calculator.Config
	upgrader websocket.Upgrader
	c        calculator.Calculator
}

func NewServer(cfg calculator.Config, upgrader websocket.Upgrader, c calculator.Calculator) *Server {
	return &Server{
		cfg:      cfg,
		upgrader: upgrader,
		c:        c,
	}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}
	defer conn.Close()

	hub := NewHub(s.c)
	hub.conn = conn
	defer close(hub.done)
	go hub.handleRequest()
	go hub.handleResponse()

	log.WithField("remote", conn.RemoteAddr().String()).Info("连接建立")
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Println("err: ", err)
			}
			log.WithField("remote", conn.RemoteAddr().String()).Info("连接断开")
			return
		}
		var msg model.Msg
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Println("err: ", err)
			msg = model.Msg{Type: msgMalformed, Content: err.Error()}
		}
		hub.msg <- msg
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(s.cfg.Path, s.serveWs)
	return mux
}

func (s *Server) Serve() error {
	log.WithFields(log.Fields{
		"addr": s.cfg.Addr,
		"path": s.cfg.Path,
	}).Info("服务启动")
	return http.ListenAndServe(s.cfg.Addr, s.Handler())
}
