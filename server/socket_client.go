// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Levels carry every tile's texture, so writes get more time than pings need.
	writeWait = 10 * time.Second

	// A peer that misses pongs for this long is dropped.
	pongWait = 60 * time.Second

	// Must be less than pongWait.
	pingPeriod = (pongWait * 8) / 10

	// A full regenerate replaces every queued level, so the queue stays short.
	levelQueueLen = 4

	// Inbound messages are small commands.
	maxMessageSize = 512
)

var errHubClosed = errors.New("hub closed send queue")

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	HandshakeTimeout: time.Second,
	ReadBufferSize:   maxMessageSize,
	WriteBufferSize:  16 * 1024,
}

// SocketClient views the hub's level over a websocket.
// Outbound messages are queued and written by a single goroutine.
type SocketClient struct {
	ClientData
	conn  *websocket.Conn
	queue chan outbound
	once  sync.Once
}

func NewSocketClient(conn *websocket.Conn) *SocketClient {
	return &SocketClient{
		conn:  conn,
		queue: make(chan outbound, levelQueueLen),
	}
}

func (client *SocketClient) Close() {
	close(client.queue)
}

func (client *SocketClient) Data() *ClientData {
	return &client.ClientData
}

func (client *SocketClient) Destroy() {
	client.once.Do(func() {
		hub := client.Hub

		// Must not block when called on the hub goroutine.
		select {
		case hub.unregister <- client:
		default:
			go func() {
				hub.unregister <- client
			}()
		}

		_ = client.conn.Close()
	})
}

func (client *SocketClient) Init() {
	go client.writeLoop()
	go client.readLoop()
}

// Send queues out. A client too slow to drain its queue is dropped.
func (client *SocketClient) Send(out outbound) {
	select {
	case client.queue <- out:
	default:
		log.Println("dropping slow socket client")
		client.Destroy()
	}
}

// readLoop forwards inbound messages to the hub until the connection fails.
func (client *SocketClient) readLoop() {
	defer client.Destroy()

	conn := client.conn
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		in, err := client.readMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Println("close error:", err)
			}
			return
		}
		// Unknown types are answered by the hub with an Error
		client.Hub.inbound <- SignedInbound{Client: client, inbound: in}
	}
}

func (client *SocketClient) readMessage() (inbound, error) {
	_, r, err := client.conn.NextReader()
	if err != nil {
		return nil, err
	}

	var message Message
	if err = json.NewDecoder(r).Decode(&message); err != nil {
		log.Println("unmarshal error:", err)
		return nil, err
	}
	in, ok := message.Data.(inbound)
	if !ok {
		return nil, errors.New("message is not inbound")
	}
	return in, nil
}

// writeLoop writes queued messages and pings until the queue is closed or a write fails.
func (client *SocketClient) writeLoop() {
	pingTicker := time.NewTicker(pingPeriod)
	defer func() {
		pingTicker.Stop()
		client.Destroy()
	}()

	for {
		var err error
		select {
		case out, ok := <-client.queue:
			if !ok {
				_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
				_ = client.conn.WriteMessage(websocket.CloseMessage, nil)
				err = errHubClosed
				break
			}
			err = client.writeMessage(out)
		case <-pingTicker.C:
			_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			err = client.conn.WriteMessage(websocket.PingMessage, nil)
		}

		if err != nil {
			if !errors.Is(err, errHubClosed) {
				log.Println("send error:", err)
			}
			return
		}
	}
}

func (client *SocketClient) writeMessage(out outbound) error {
	defer out.Pool()

	_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
	w, err := client.conn.NextWriter(websocket.TextMessage)
	if err != nil {
		return err
	}
	// Message adds the type tag
	if err = json.NewEncoder(w).Encode(Message{Data: out}); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
