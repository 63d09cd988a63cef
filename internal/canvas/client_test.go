package canvas

import (
	"bufio"
	"image/color"
	"net"
	"testing"
)

// pipeClient returns a client over an in-memory pipe plus the server end.
func pipeClient(t *testing.T) (*Client, net.Conn) {
	t.Helper()
	clientEnd, serverEnd := net.Pipe()
	t.Cleanup(func() {
		clientEnd.Close()
		serverEnd.Close()
	})
	return New(clientEnd), serverEnd
}

func readLine(t *testing.T, conn net.Conn, out chan<- string) {
	t.Helper()
	go func() {
		line, err := bufio.NewReader(conn).ReadString('\n')
		if err != nil {
			out <- "read error: " + err.Error()
			return
		}
		out <- line
	}()
}

// --- Pixel writes ---

func TestSetPixel_WireFormat(t *testing.T) {
	c, server := pipeClient(t)
	lines := make(chan string, 1)
	readLine(t, server, lines)

	if err := c.SetPixel(12, 34, color.RGBA{R: 0xff, G: 0, B: 0xff, A: 0xff}); err != nil {
		t.Fatalf("set pixel: %v", err)
	}
	if err := c.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if got := <-lines; got != "PX 12 34 FF00FFFF\n" {
		t.Fatalf("unexpected wire line %q", got)
	}
}

func TestSetPixel_OffCanvasDropped(t *testing.T) {
	c, server := pipeClient(t)
	lines := make(chan string, 1)
	readLine(t, server, lines)

	// Negative and oversized coordinates never reach the wire; the next
	// in-range pixel is the first thing the server sees.
	if err := c.SetPixel(-3, 10, color.RGBA{A: 0xff}); err != nil {
		t.Fatalf("negative x: %v", err)
	}
	if err := c.SetPixel(10, -3, color.RGBA{A: 0xff}); err != nil {
		t.Fatalf("negative y: %v", err)
	}
	if err := c.SetPixel(1<<16, 10, color.RGBA{A: 0xff}); err != nil {
		t.Fatalf("oversized x: %v", err)
	}
	if err := c.SetPixel(1, 2, color.RGBA{R: 0x01, G: 0x02, B: 0x03, A: 0x04}); err != nil {
		t.Fatalf("in-range pixel: %v", err)
	}
	if err := c.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if got := <-lines; got != "PX 1 2 01020304\n" {
		t.Fatalf("expected only the in-range pixel, got %q", got)
	}
}

func TestFlush_SurfacesConnectionError(t *testing.T) {
	c, server := pipeClient(t)
	server.Close()
	if err := c.SetPixel(1, 1, color.RGBA{A: 0xff}); err != nil {
		t.Fatalf("buffered write should not touch the socket: %v", err)
	}
	if err := c.Flush(); err == nil {
		t.Fatal("expected flush to fail on a dead connection")
	}
}

// --- Size query ---

func TestSize_ParsesReply(t *testing.T) {
	c, server := pipeClient(t)
	go func() {
		r := bufio.NewReader(server)
		if line, _ := r.ReadString('\n'); line != "SIZE\n" {
			server.Close()
			return
		}
		server.Write([]byte("SIZE 1024 768\n"))
	}()

	w, h, err := c.Size()
	if err != nil {
		t.Fatalf("size: %v", err)
	}
	if w != 1024 || h != 768 {
		t.Fatalf("expected 1024x768, got %dx%d", w, h)
	}
}

func TestSize_RejectsGarbageReply(t *testing.T) {
	c, server := pipeClient(t)
	go func() {
		bufio.NewReader(server).ReadString('\n')
		server.Write([]byte("HELP unknown command\n"))
	}()

	if _, _, err := c.Size(); err == nil {
		t.Fatal("expected an error for a non-SIZE reply")
	}
}
