// Package realtime pano istemcilerine websocket üzerinden olay dağıtır.
// Sunucudan istemciye tek yönlüdür: istemciden gelen mesajlar okunup
// çöpe atılır, yalnızca bağlantı sağlığı için dinlenir.
package realtime

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// envelope telin üzerindeki olay zarfı.
type envelope struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}

// Hub bağlı istemcilerin kaydı ve yayın döngüsü. Tüm durum Run
// goroutine'ine aittir; dışarısı yalnızca kanallara yazar.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	upgrader   websocket.Upgrader
	logger     *zap.Logger
}

// NewHub Hub örneği oluşturur.
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Pano istemcisi ayrı porttan servis edilir; origin
			// kontrolü HTTP katmanındaki CORS ayarına bırakıldı.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// Run kayıt ve yayın döngüsü. ctx iptal edilince tüm istemcileri
// kapatıp döner.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.logger.Info("websocket dağıtıcısı durduruldu")
			return

		case client := <-h.register:
			h.clients[client] = true
			h.logger.Info("pano istemcisi bağlandı", zap.Int("istemci", len(h.clients)))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.logger.Info("pano istemcisi ayrıldı", zap.Int("istemci", len(h.clients)))
			}

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Tıkanan istemci yayını yavaşlatamaz, düşürülür.
					delete(h.clients, client)
					close(client.send)
				}
			}
		}
	}
}

// Broadcast olayı tüm bağlı istemcilere gönderir.
func (h *Hub) Broadcast(event string, payload interface{}) {
	message, err := json.Marshal(envelope{Event: event, Data: payload})
	if err != nil {
		h.logger.Warn("yayın mesajı kodlanamadı", zap.String("olay", event), zap.Error(err))
		return
	}
	select {
	case h.broadcast <- message:
	default:
		h.logger.Warn("yayın kanalı dolu, olay düşürüldü", zap.String("olay", event))
	}
}

// ServeWS HTTP isteğini websocket'e yükseltip istemciyi kaydeder.
func (h *Hub) ServeWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket yükseltmesi başarısız", zap.Error(err))
		return
	}

	client := &Client{hub: h, conn: conn, send: make(chan []byte, 16)}
	h.register <- client

	go client.writePump()
	go client.readPump()
}
