package engine

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/Sebkah/99draft-sub000/internal/config"
	"github.com/Sebkah/99draft-sub000/internal/engine/interval"
	"github.com/Sebkah/99draft-sub000/internal/engine/piecetable"
	"github.com/Sebkah/99draft-sub000/internal/engine/style"
	"github.com/Sebkah/99draft-sub000/internal/event"
	"github.com/Sebkah/99draft-sub000/internal/logging"
)

// Document is the main facade over the text-storage core. It combines a
// piece-table buffer with one style manager per tracked axis and keeps the
// two in sync: every successful mutation is published to the managers before
// the mutating call returns.
//
// All operations are safe for concurrent use. Reads take a shared lock;
// mutations take an exclusive lock, so a style rewrite always completes
// before the next edit is accepted.
type Document struct {
	mu sync.RWMutex

	id       string
	table    *piecetable.Table
	notifier *event.Notifier
	logger   *log.Logger

	boolAxes  map[string]*style.BooleanManager
	valueAxes map[string]*style.ValueManager[string]

	// Creation state, consumed by New.
	cfg         *config.Config
	initContent string
}

// New creates a document with the given options. Style axes declared in the
// configuration (the defaults, unless WithConfig overrides them) are created
// and registered before the document is returned.
func New(opts ...Option) *Document {
	d := &Document{
		id:        uuid.New().String(),
		notifier:  event.NewNotifier(),
		boolAxes:  make(map[string]*style.BooleanManager),
		valueAxes: make(map[string]*style.ValueManager[string]),
	}

	for _, opt := range opts {
		opt(d)
	}

	if d.cfg == nil {
		d.cfg = config.Default()
	}
	if d.logger == nil {
		d.logger = logging.New(d.cfg.Logging.Level)
	}

	tableOpts := []piecetable.Option{
		piecetable.WithNotifier(d.notifier),
		piecetable.WithLogger(d.logger),
		piecetable.WithDocumentID(d.id),
	}
	if !d.cfg.Editor.MergeAddPieces {
		tableOpts = append(tableOpts, piecetable.WithoutAddMerge())
	}
	d.table = piecetable.New(d.initContent, tableOpts...)

	for name, axis := range d.cfg.Styles {
		switch axis.Kind {
		case config.KindValue:
			d.addValueAxis(name)
		default:
			d.addBooleanAxis(name)
		}
	}

	return d
}

// NewFromReader creates a document whose initial content is read from r.
func NewFromReader(r io.Reader, opts ...Option) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	opts = append(opts, WithContent(string(data)))
	return New(opts...), nil
}

// ID returns the document's unique identifier.
func (d *Document) ID() string {
	return d.id
}

// Insert inserts text at the given character position and synchronizes every
// style axis before returning.
func (d *Document) Insert(position int, text string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.table.Insert(position, text)
}

// Delete removes count characters starting at start and synchronizes every
// style axis before returning.
func (d *Document) Delete(start, count int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.table.Delete(start, count)
}

// Text returns the full document content.
func (d *Document) Text() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.table.Text()
}

// TextRange returns length characters starting at start. An out-of-bounds
// range returns "" with a diagnostic warning, never an error.
func (d *Document) TextRange(start, length int) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.table.RangeText(start, length)
}

// Len returns the document length in characters.
func (d *Document) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.table.Len()
}

// Version returns the mutation counter. It increments on every successful
// edit; layout code may poll it to skip recomputation.
func (d *Document) Version() uint64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.table.Version()
}

// Pieces returns a diagnostic snapshot of the piece sequence, valid until
// the next mutation.
func (d *Document) Pieces() []piecetable.Piece {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.table.Pieces()
}

// PieceText returns the text a piece references.
func (d *Document) PieceText(p piecetable.Piece) (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.table.PieceText(p)
}

// Subscribe registers a listener for edit notifications. Listeners run
// synchronously inside the mutating call, after the built-in style managers.
func (d *Document) Subscribe(l event.Listener) (*event.Subscription, error) {
	return d.notifier.Subscribe(l)
}

// Axes returns the names of every tracked style axis, sorted.
func (d *Document) Axes() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.boolAxes)+len(d.valueAxes))
	for name := range d.boolAxes {
		names = append(names, name)
	}
	for name := range d.valueAxes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AddBooleanStyle registers a new on/off style axis.
func (d *Document) AddBooleanStyle(name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.boolAxes[name]; exists {
		return fmt.Errorf("style axis %q: %w", name, ErrStyleExists)
	}
	if _, exists := d.valueAxes[name]; exists {
		return fmt.Errorf("style axis %q: %w", name, ErrStyleExists)
	}
	d.addBooleanAxis(name)
	return nil
}

// AddValueStyle registers a new valued style axis.
func (d *Document) AddValueStyle(name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.boolAxes[name]; exists {
		return fmt.Errorf("style axis %q: %w", name, ErrStyleExists)
	}
	if _, exists := d.valueAxes[name]; exists {
		return fmt.Errorf("style axis %q: %w", name, ErrStyleExists)
	}
	d.addValueAxis(name)
	return nil
}

// ToggleStyle flips the named on/off style over [start, end).
func (d *Document) ToggleStyle(name string, start, end int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	m, err := d.booleanAxis(name)
	if err != nil {
		return err
	}
	if err := d.checkRange(start, end); err != nil {
		return err
	}
	m.Toggle(start, end)
	return nil
}

// EnableStyle turns the named on/off style on over [start, end).
func (d *Document) EnableStyle(name string, start, end int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	m, err := d.booleanAxis(name)
	if err != nil {
		return err
	}
	if err := d.checkRange(start, end); err != nil {
		return err
	}
	m.Enable(start, end)
	return nil
}

// DisableStyle turns the named on/off style off over [start, end).
func (d *Document) DisableStyle(name string, start, end int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	m, err := d.booleanAxis(name)
	if err != nil {
		return err
	}
	if err := d.checkRange(start, end); err != nil {
		return err
	}
	m.Disable(start, end)
	return nil
}

// StyleActive reports whether the named on/off style is on at the position.
func (d *Document) StyleActive(name string, position int) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	m, err := d.booleanAxis(name)
	if err != nil {
		return false, err
	}
	return m.Active(position), nil
}

// StyleActiveOverRange reports whether the named on/off style covers all of
// [start, end) with no gap.
func (d *Document) StyleActiveOverRange(name string, start, end int) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	m, err := d.booleanAxis(name)
	if err != nil {
		return false, err
	}
	return m.ActiveOverRange(start, end), nil
}

// StyleRuns returns the runs of the named on/off style overlapping
// [start, end), for layout code deciding where the style applies.
func (d *Document) StyleRuns(name string, start, end int) ([]interval.Run[bool], error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	m, err := d.booleanAxis(name)
	if err != nil {
		return nil, err
	}
	return m.RunsOverlapping(start, end), nil
}

// SetStyleValue assigns value to [start, end) on the named valued style.
func (d *Document) SetStyleValue(name string, start, end int, value string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	m, err := d.valueAxis(name)
	if err != nil {
		return err
	}
	if err := d.checkRange(start, end); err != nil {
		return err
	}
	m.SetValue(start, end, value)
	return nil
}

// StyleValueAt returns the named valued style's value at the position, with
// ok=false when the position is unstyled.
func (d *Document) StyleValueAt(name string, position int) (value string, ok bool, err error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	m, err := d.valueAxis(name)
	if err != nil {
		return "", false, err
	}
	value, ok = m.ValueAt(position)
	return value, ok, nil
}

// StyleValueOverRange returns the single value the named valued style holds
// over all of [start, end), with ok=false when the range is partly unstyled
// or spans more than one value.
func (d *Document) StyleValueOverRange(name string, start, end int) (value string, ok bool, err error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	m, err := d.valueAxis(name)
	if err != nil {
		return "", false, err
	}
	value, ok = m.ValueOverRange(start, end)
	return value, ok, nil
}

// ValueRuns returns the runs of the named valued style overlapping
// [start, end).
func (d *Document) ValueRuns(name string, start, end int) ([]interval.Run[string], error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	m, err := d.valueAxis(name)
	if err != nil {
		return nil, err
	}
	return m.RunsOverlapping(start, end), nil
}

func (d *Document) addBooleanAxis(name string) {
	m := style.NewBooleanManager(name, style.WithLogger[bool](d.logger))
	d.boolAxes[name] = m
	_, _ = d.notifier.Subscribe(m)
}

func (d *Document) addValueAxis(name string) {
	m := style.NewValueManager[string](name, style.WithLogger[string](d.logger))
	d.valueAxes[name] = m
	_, _ = d.notifier.Subscribe(m)
}

func (d *Document) booleanAxis(name string) (*style.BooleanManager, error) {
	if m, ok := d.boolAxes[name]; ok {
		return m, nil
	}
	if _, ok := d.valueAxes[name]; ok {
		return nil, fmt.Errorf("style axis %q holds values, not on/off state: %w", name, ErrStyleKindMismatch)
	}
	return nil, fmt.Errorf("style axis %q: %w", name, ErrUnknownStyle)
}

func (d *Document) valueAxis(name string) (*style.ValueManager[string], error) {
	if m, ok := d.valueAxes[name]; ok {
		return m, nil
	}
	if _, ok := d.boolAxes[name]; ok {
		return nil, fmt.Errorf("style axis %q holds on/off state, not values: %w", name, ErrStyleKindMismatch)
	}
	return nil, fmt.Errorf("style axis %q: %w", name, ErrUnknownStyle)
}

// checkRange validates a style mutation range against the document bounds.
// Mutating a range the document does not contain is a caller bug.
func (d *Document) checkRange(start, end int) error {
	if start < 0 || end < start || end > d.table.Len() {
		return fmt.Errorf("style range [%d,%d) in document of length %d: %w",
			start, end, d.table.Len(), ErrRangeInvalid)
	}
	return nil
}
