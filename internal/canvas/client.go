// Package canvas speaks the text Pixelflut protocol: one TCP connection,
// "PX <x> <y> <RRGGBBAA>" to paint and "SIZE" to query the surface extent.
// The server keeps every painted pixel until someone paints over it.
package canvas

import (
	"bufio"
	"fmt"
	"image/color"
	"net"
	"strings"
)

// maxCoord is the largest coordinate the wire format carries (u16).
const maxCoord = 1<<16 - 1

// Client is a buffered Pixelflut connection. It is not safe for concurrent
// use; each streamer owns its own Client.
type Client struct {
	conn net.Conn
	r    *bufio.Reader
	w    *bufio.Writer
}

// Dial connects to a Pixelflut server at host:port.
func Dial(addr string) (*Client, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("canvas: dial %s: %w", addr, err)
	}
	return New(conn), nil
}

// New wraps an established connection. Used by Dial and by tests running
// over an in-memory pipe.
func New(conn net.Conn) *Client {
	return &Client{
		conn: conn,
		r:    bufio.NewReader(conn),
		w:    bufio.NewWriter(conn),
	}
}

// Size asks the server for the canvas dimensions.
func (c *Client) Size() (width, height int, err error) {
	if _, err := c.w.WriteString("SIZE\n"); err != nil {
		return 0, 0, fmt.Errorf("canvas: size request: %w", err)
	}
	if err := c.w.Flush(); err != nil {
		return 0, 0, fmt.Errorf("canvas: size request: %w", err)
	}
	line, err := c.r.ReadString('\n')
	if err != nil {
		return 0, 0, fmt.Errorf("canvas: size reply: %w", err)
	}
	if _, err := fmt.Sscanf(strings.TrimSpace(line), "SIZE %d %d", &width, &height); err != nil {
		return 0, 0, fmt.Errorf("canvas: bad size reply %q: %w", strings.TrimSpace(line), err)
	}
	return width, height, nil
}

// SetPixel queues one pixel write. Coordinates outside the u16 wire range
// are dropped without error; sprites straddling the field edge produce
// them routinely. The write lands on the socket when the buffer fills or
// Flush is called.
func (c *Client) SetPixel(x, y int, col color.RGBA) error {
	if x < 0 || y < 0 || x > maxCoord || y > maxCoord {
		return nil
	}
	if _, err := fmt.Fprintf(c.w, "PX %d %d %s\n", x, y, Hex(col)); err != nil {
		return fmt.Errorf("canvas: write pixel: %w", err)
	}
	return nil
}

// Flush pushes any buffered pixel writes to the socket.
func (c *Client) Flush() error {
	if err := c.w.Flush(); err != nil {
		return fmt.Errorf("canvas: flush: %w", err)
	}
	return nil
}

// Close tears down the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
