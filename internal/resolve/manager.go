package resolve

import (
	"io"

	"github.com/sirupsen/logrus"

	"frame-transformer/internal/conffile"
	"frame-transformer/internal/transform"
)

// DefaultMaxSeekDepth bounds the number of links in a resolved chain.
const DefaultMaxSeekDepth = 50

// Manager resolves transformation chains over a Configuration. Resolution
// only reads the configuration, so concurrent queries are safe as long as
// nobody mutates it meanwhile.
type Manager struct {
	conf         *transform.Configuration
	maxSeekDepth int
	logger       logrus.FieldLogger
}

// Option configures a Manager.
type Option func(*Manager)

// WithMaxSeekDepth sets the maximum chain length. Non-positive values are
// ignored.
func WithMaxSeekDepth(depth int) Option {
	return func(m *Manager) {
		if depth > 0 {
			m.maxSeekDepth = depth
		}
	}
}

// WithLogger sets the logger used for search tracing.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewManager creates a Manager over conf. A nil conf is replaced by an
// empty Configuration.
func NewManager(conf *transform.Configuration, opts ...Option) *Manager {
	if conf == nil {
		conf = transform.NewConfiguration()
	}

	m := &Manager{
		conf:         conf,
		maxSeekDepth: DefaultMaxSeekDepth,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		m.logger = l
	}

	return m
}

// Conf returns the configuration the manager resolves over.
func (m *Manager) Conf() *transform.Configuration {
	return m.conf
}

// Checker returns the validation policy of the configuration.
func (m *Manager) Checker() transform.Checker {
	return m.conf.Checker()
}

// MaxSeekDepth returns the configured maximum chain length.
func (m *Manager) MaxSeekDepth() int {
	return m.maxSeekDepth
}

// LoadConfiguration reads a configuration file and registers its content
// into the manager's configuration.
func (m *Manager) LoadConfiguration(path string) error {
	f, err := conffile.LoadFile(path)
	if err != nil {
		return err
	}

	m.logger.WithField("path", path).Debug("loaded configuration file")

	return conffile.Apply(f, m.conf)
}

// TransformationChain returns the shortest chain of transforms from -> to.
// producers, which may be nil, adds dynamic transforms for this query only.
//
// It fails with transform.ErrInvalidConfiguration if an endpoint is not a
// declared frame, with transform.ErrArgument if a producer entry is
// malformed, and with a *transform.TransformationNotFoundError when the
// frames are not connected within the depth bound.
func (m *Manager) TransformationChain(from, to string, producers Producers) (*Chain, error) {
	if err := m.conf.CheckFrame(from); err != nil {
		return nil, err
	}

	if err := m.conf.CheckFrame(to); err != nil {
		return nil, err
	}

	if from == to {
		return identityChain(from), nil
	}

	idx, err := buildIndex(m.conf, producers)
	if err != nil {
		return nil, err
	}

	if !idx.reachable(from, to) {
		return nil, transform.NewTransformationNotFoundError(from, to, "frames are not connected")
	}

	bound := min(m.maxSeekDepth, 2*len(idx.links)+1)
	log := m.logger.WithFields(logrus.Fields{"from": from, "to": to})
	log.WithFields(logrus.Fields{"links": len(idx.links), "bound": bound}).Debug("seeking transformation chain")

	s := &search{
		idx:   idx,
		nodes: []node{{frame: from, parent: -1, link: -1}},
	}
	frontier := []int{0}

	for depth := 0; depth < bound; depth++ {
		var next []int

		for _, i := range frontier {
			found, children := s.expand(i, to)
			if found >= 0 {
				chain := s.chain(found)
				log.WithField("links", chain.Len()).Debug("found transformation chain")

				return chain, nil
			}

			next = append(next, children...)
		}

		if len(next) == 0 {
			return nil, transform.NewTransformationNotFoundError(from, to, "frames are not connected")
		}

		log.WithFields(logrus.Fields{"depth": depth + 1, "frontier": len(next)}).Debug("expanded search level")
		frontier = next
	}

	return nil, transform.NewTransformationNotFoundError(from, to, "max seek depth reached")
}
