// Package liveprogress streams tile-completion events to connected
// browsers over a websocket, so a render's progress can be watched
// live instead of only inspected by reopening the output bitmap.
package liveprogress

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"lumentrace/pkg/texture"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// TileUpdate is pushed to every connected client after a tile's bitmap
// flush.
type TileUpdate struct {
	Index   int        `json:"index"`
	Total   int        `json:"total"`
	OffsetY int        `json:"offsetY"`
	Height  int        `json:"height"`
	Percent int        `json:"percent"`
	Pixels  [][3]uint8 `json:"pixels,omitempty"`
}

// Broadcaster fans a stream of TileUpdates out to every connected
// websocket client. A send is best-effort: a write error drops that
// client and is not reported to the caller. Writes are synchronous,
// so a slow client delays Broadcast until its write completes.
type Broadcaster struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewBroadcaster builds an empty Broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{clients: make(map[*websocket.Conn]struct{})}
}

// HandleWS upgrades an HTTP request to a websocket and registers the
// connection until it closes or errors on read.
func (b *Broadcaster) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("liveprogress: upgrade failed: %v", err)
		return
	}

	b.mu.Lock()
	b.clients[conn] = struct{}{}
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		delete(b.clients, conn)
		b.mu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// Broadcast sends update to every connected client, dropping any
// client whose write fails.
func (b *Broadcaster) Broadcast(update TileUpdate) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for conn := range b.clients {
		if err := conn.WriteJSON(update); err != nil {
			conn.Close()
			delete(b.clients, conn)
		}
	}
}

// FlushTile adapts a renderer.RenderProgressive flush callback into a
// Broadcast call, snapshotting the just-written tile rows of img as
// 8-bit RGB triples.
func (b *Broadcaster) FlushTile(img *texture.Texture, index, total, offsetY, height int) {
	update := TileUpdate{
		Index:   index,
		Total:   total,
		OffsetY: offsetY,
		Height:  height,
		Percent: (index + 1) * 100 / total,
	}

	width := img.Width()
	update.Pixels = make([][3]uint8, 0, width*height)
	for y := offsetY; y < offsetY+height && y < img.Height(); y++ {
		for x := 0; x < width; x++ {
			c := img.ReadPixel(x, y).To24()
			update.Pixels = append(update.Pixels, [3]uint8{c.R, c.G, c.B})
		}
	}

	b.Broadcast(update)
}
