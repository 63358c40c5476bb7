package handler

import (
	"context"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/painel-leads-api/internal/usecases/dashboard"
	"github.com/vfg2006/painel-leads-api/pkg/log"
)

const (
	writeWait   = 10 * time.Second
	pongWait    = 60 * time.Second
	pingPeriod  = (pongWait * 9) / 10
	maxReadSize = 4 * 1024
	sendBuffer  = 16
)

// Tipos de evento enviados pelo stream
const (
	StreamEventState    = "state"
	StreamEventSnapshot = "snapshot"
	StreamEventAlert    = "alert"
)

// StreamEvent é a mensagem enviada aos clientes conectados em /v1/stream.
type StreamEvent struct {
	Type       string           `json:"type"`
	Collection string           `json:"collection,omitempty"`
	Message    string           `json:"message,omitempty"`
	State      *dashboard.State `json:"state,omitempty"`
}

type streamClient struct {
	conn *websocket.Conn
	send chan []byte
}

// StreamHub mantém as conexões websocket abertas e distribui os eventos do painel.
// Também serve de Notifier do gerenciador de assinaturas: os alertas chegam a todos os clientes.
type StreamHub struct {
	mu      sync.RWMutex
	clients map[*streamClient]struct{}
	closed  bool
}

func NewStreamHub() *StreamHub {
	return &StreamHub{
		clients: make(map[*streamClient]struct{}),
	}
}

// Alert registra o aviso no log e o envia como evento alert.
func (h *StreamHub) Alert(ctx context.Context, message string) {
	log.ForContext(ctx).Warn(message)
	h.Broadcast(StreamEvent{Type: StreamEventAlert, Message: message})
}

// Broadcast envia o evento para todos os clientes. Cliente com a fila cheia é desconectado.
func (h *StreamHub) Broadcast(event StreamEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		logrus.WithError(err).Error("Erro ao serializar evento do stream")
		return
	}

	var slow []*streamClient

	h.mu.RLock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		logrus.Warn("Cliente do stream lento, desconectando")
		h.unregister(c)
	}
}

// Count devolve o número de clientes conectados.
func (h *StreamHub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close desconecta todos os clientes. Conexões novas são recusadas depois disso.
func (h *StreamHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}

// register adiciona o cliente já com o evento inicial na fila. O evento é montado com o hub
// travado para que nenhuma mudança fique entre o estado inicial e o primeiro broadcast.
func (h *StreamHub) register(c *streamClient, initial func() StreamEvent) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false
	}

	data, err := json.Marshal(initial())
	if err != nil {
		logrus.WithError(err).Error("Erro ao serializar estado inicial do stream")
		return false
	}

	c.send <- data
	h.clients[c] = struct{}{}
	return true
}

func (h *StreamHub) unregister(c *streamClient) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

// Serve envia o evento inicial e mantém a conexão até o cliente sair ou o hub fechar.
func (h *StreamHub) Serve(conn *websocket.Conn, initial func() StreamEvent) {
	c := &streamClient{
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}

	if !h.register(c, initial) {
		conn.Close()
		return
	}

	go h.writePump(c)
	h.readPump(c)
}

// readPump só descarta o que o cliente manda; serve para detectar a desconexão e os pongs.
func (h *StreamHub) readPump(c *streamClient) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxReadSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logrus.WithError(err).Warn("Conexão do stream encerrada inesperadamente")
			}
			return
		}
	}
}

func (h *StreamHub) writePump(c *streamClient) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ForwardChanges repassa cada mudança do painel para o stream com o estado completo.
// Devolve a função que para o repasse.
func ForwardChanges(board Board, hub *StreamHub) func() {
	return board.OnChange(func(event dashboard.Event) {
		state := board.State()
		hub.Broadcast(StreamEvent{
			Type:       StreamEventSnapshot,
			Collection: event.Collection,
			State:      &state,
		})
	})
}

// Stream abre o websocket do painel: estado completo na conexão e eventos a cada mudança.
func Stream(board Board, hub *StreamHub, allowedOrigins []string) http.HandlerFunc {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     checkOrigin(allowedOrigins),
	}

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Falha ao abrir o stream")
			return
		}

		log.ForContext(r.Context()).Info("Cliente conectado ao stream")

		hub.Serve(conn, func() StreamEvent {
			state := board.State()
			return StreamEvent{Type: StreamEventState, State: &state}
		})
	}
}

// checkOrigin aceita requisições sem Origin (clientes fora do navegador) e as origens liberadas no CORS.
func checkOrigin(allowedOrigins []string) func(r *http.Request) bool {
	allowAll := slices.Contains(allowedOrigins, "*")

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || allowAll || slices.Contains(allowedOrigins, origin)
	}
}
