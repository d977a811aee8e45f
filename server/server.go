package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"tofu/model"
	"tofu/refrigerant"
)

type Server struct {
	addr     string
	upgrader websocket.Upgrader
}

func NewServer(addr string, upgrader websocket.Upgrader) *Server {
	if addr == "" {
		addr = cfg.Addr
	}
	return &Server{
		addr:     addr,
		upgrader: upgrader,
	}
}

// serveWs handles websocket requests from the peer.
// 每条连接一个 Hub，会话内的计算记录互不可见
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}
	defer conn.Close()

	hub := NewHub()
	hub.conn = conn
	defer close(hub.done)

	go hub.handleRequest()
	go hub.handleResponse()

	var msg model.Msg
	for {
		err = conn.ReadJSON(&msg)
		if err != nil {
			log.Println("err: ", err)
			return
		}
		hub.msg <- msg
	}
}

func (s *Server) Serve() error {
	// 配置中指定了额外物性表时先加载
	if cfg.RefrigerantTable != "" {
		if err := refrigerant.LoadFromJSON(cfg.RefrigerantTable); err != nil {
			log.Warn("加载制冷剂物性表失败: ", err)
		}
	}
	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		s.serveWs(w, r)
	})
	log.Info("工程计算服务启动，监听 ", s.addr)
	return http.ListenAndServe(s.addr, nil)
}
