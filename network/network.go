package network

// Network is interface of all kinds of network.
type Network interface {
	Serve() error
}

// Conn is one framed client connection. ReadMessage blocks until a whole
// frame arrives; WriteMessage is safe for concurrent use.
type Conn interface {
	ReadMessage() ([]byte, error)
	WriteMessage(data []byte) error
	Close() error
}

// Handler drives a connection until it drops.
type Handler func(conn Conn)
