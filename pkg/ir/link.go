package ir

// Link is a transmitter and a receiver used together by one device.
type Link struct {
	Transmitter *Transmitter
	Receiver    *Receiver
}

// NewLink creates a Link.
func NewLink(carrier Carrier, clock Clock, src EdgeSource) *Link {
	return &Link{
		Transmitter: NewTransmitter(carrier, clock),
		Receiver:    NewReceiver(src),
	}
}

// Begin initializes both ends.
func (l *Link) Begin() error {
	l.Transmitter.Begin()
	return l.Receiver.Begin()
}

// Send transmits b.
func (l *Link) Send(b byte) {
	l.Transmitter.Send(b)
}

// Available returns the number of unread bytes.
func (l *Link) Available() int {
	return l.Receiver.Available()
}

// Read returns the oldest unread byte, or 0.
func (l *Link) Read() byte {
	return l.Receiver.Read()
}

// ReadByte implements io.ByteReader.
func (l *Link) ReadByte() (byte, error) {
	return l.Receiver.ReadByte()
}

// Stats returns the receiver counters.
func (l *Link) Stats() ReceiverStats {
	return l.Receiver.Stats()
}
