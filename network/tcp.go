package network

import (
	"bufio"
	"bytes"
	"net"
	"sync"

	"github.com/hearts-online/server/log"
)

// Tcp serves the same protocol as the websocket listener, framed as
// newline-delimited JSON.
type Tcp struct {
	addr    string
	handler Handler
}

func NewTcpServer(addr string, handler Handler) Tcp {
	return Tcp{addr: addr, handler: handler}
}

func (t Tcp) Serve() error {
	listener, err := net.Listen("tcp", t.addr)
	if err != nil {
		return err
	}
	log.Infof("tcp server listening on %s\n", t.addr)
	for {
		conn, err := listener.Accept()
		if err != nil {
			log.Infof("listener.Accept err %v\n", err)
			continue
		}
		go t.handler(&tcpConn{conn: conn, reader: bufio.NewReader(conn)})
	}
}

type tcpConn struct {
	mu     sync.Mutex
	conn   net.Conn
	reader *bufio.Reader
}

func (c *tcpConn) ReadMessage() ([]byte, error) {
	line, err := c.reader.ReadBytes('\n')
	if err != nil {
		return nil, err
	}
	return bytes.TrimRight(line, "\r\n"), nil
}

func (c *tcpConn) WriteMessage(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	// broadcasts share one payload slice, frame into a private buffer
	framed := make([]byte, 0, len(data)+1)
	framed = append(framed, data...)
	framed = append(framed, '\n')
	_, err := c.conn.Write(framed)
	return err
}

func (c *tcpConn) Close() error {
	return c.conn.Close()
}
