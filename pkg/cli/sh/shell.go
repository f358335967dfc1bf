package sh

import (
	"encoding/json"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/abiosoft/ishell"
	"github.com/golang/glog"

	"github.com/robotalks/irlink/pkg/ir"
)

// Link is the IR link driven by the shell.
type Link interface {
	Send(b byte)
	Available() int
	ReadByte() (byte, error)
	Stats() ir.ReceiverStats
}

// Shell provides ishell backed interactive shell.
type Shell struct {
	Interactive bool
	OutputJSON  bool

	Shell *ishell.Shell
	Link  Link
}

const (
	shellKey = "$shell"
	prompt   = "ir > "
)

var (
	evalOnly   bool
	outputJSON bool

	commands = []*ishell.Cmd{
		&SendCmd,
		&AvailCmd,
		&ReadCmd,
		&DrainCmd,
		&StatusCmd,
	}
)

// SetupFlags registers the shell flags.
func SetupFlags() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print output in JSON.")
}

// AddCmds is used by other commands providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a new shell.
func New(link Link) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		OutputJSON:  outputJSON,
		Shell:       ishell.New(),
		Link:        link,
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(prompt)
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// ParseBytes parses values like 172, 0xAC or 0254.
func ParseBytes(args []string) ([]byte, error) {
	out := make([]byte, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseUint(arg, 0, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid byte %q", arg)
		}
		out = append(out, byte(v))
	}
	return out, nil
}

// FormatBytes formats bytes in hex.
func FormatBytes(p []byte) string {
	strs := make([]string, len(p))
	for n, b := range p {
		strs[n] = fmt.Sprintf("%#02x", b)
	}
	return strings.Join(strs, " ")
}

// Send transmits bytes parsed from args.
func (s *Shell) Send(args []string) ([]byte, error) {
	p, err := ParseBytes(args)
	if err != nil {
		return nil, err
	}
	if len(p) == 0 {
		return nil, fmt.Errorf("bytes expected")
	}
	for _, b := range p {
		s.Link.Send(b)
	}
	return p, nil
}

// ReadN reads at most n received bytes.
func (s *Shell) ReadN(n int) []byte {
	out := make([]byte, 0, n)
	for len(out) < n {
		b, err := s.Link.ReadByte()
		if err != nil {
			break
		}
		out = append(out, b)
	}
	return out
}

// Drain reads all received bytes.
func (s *Shell) Drain() []byte {
	return s.ReadN(s.Link.Available())
}

func (s *Shell) print(c *ishell.Context, v interface{}, text string) {
	if s.OutputJSON {
		out, err := json.Marshal(v)
		if err != nil {
			c.Err(err)
			return
		}
		c.Println(string(out))
		return
	}
	c.Println(text)
}

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			glog.Fatal(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	glog.Fatal("command expected")
}

var (
	// SendCmd transmits bytes.
	SendCmd = ishell.Cmd{
		Name:    "send",
		Aliases: []string{"s"},
		Help:    "BYTE...",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			p, err := s.Send(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			s.print(c, p, "sent "+FormatBytes(p))
		},
	}

	// AvailCmd prints the number of unread bytes.
	AvailCmd = ishell.Cmd{
		Name:    "avail",
		Aliases: []string{"a"},
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			n := s.Link.Available()
			s.print(c, n, strconv.Itoa(n))
		},
	}

	// ReadCmd reads received bytes.
	ReadCmd = ishell.Cmd{
		Name:    "read",
		Aliases: []string{"r"},
		Help:    "[COUNT]",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			n := 1
			if len(c.Args) > 0 {
				var err error
				if n, err = strconv.Atoi(c.Args[0]); err != nil || n <= 0 {
					c.Err(fmt.Errorf("invalid count %q", c.Args[0]))
					return
				}
			}
			p := s.ReadN(n)
			if len(p) == 0 && !s.OutputJSON {
				c.Println("no data")
				return
			}
			s.print(c, p, FormatBytes(p))
		},
	}

	// DrainCmd reads all received bytes.
	DrainCmd = ishell.Cmd{
		Name:    "drain",
		Aliases: []string{"d"},
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			p := s.Drain()
			s.print(c, p, FormatBytes(p))
		},
	}

	// StatusCmd prints receiver counters.
	StatusCmd = ishell.Cmd{
		Name: "status",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			st := s.Link.Stats()
			s.print(c, st, fmt.Sprintf("available %d, edges %d, frames %d, bytes %d, overwritten %d",
				s.Link.Available(), st.Edges, st.Frames, st.Bytes, st.Overwritten))
		},
	}
)

// Main is a helper to provide a single call in main.
func Main(link Link) {
	SetupFlags()
	flag.Parse()
	New(link).Run(flag.Args()...)
}
