package classname_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/classwrap/pkg/classname"
)

func attribute(span classname.Span) classname.ClassNameNode {
	return classname.ClassNameNode{
		Kind:      classname.KindAttribute,
		Span:      span,
		Delimiter: classname.DelimiterDouble,
		Element:   "div",
	}
}

func TestRewrite_Attribute(t *testing.T) {
	t.Parallel()

	src := "<div\n    class=\"" + classes(1, 30) + "\"\n></div>\n"
	nodes := []classname.ClassNameNode{attribute(quotedSpan(t, src, "class="))}

	got := rewrite(t, src, nodes, options(60))

	want := "<div\n    class=\"" + classes(1, 15) +
		"\n      " + classes(16, 29) +
		"\n      " + classes(30, 30) + "\"\n></div>\n"
	assert.Equal(t, want, got)
}

func TestRewrite_ShortAttributeUntouched(t *testing.T) {
	t.Parallel()

	src := `<div class="flex items-center"></div>`
	nodes := []classname.ClassNameNode{attribute(quotedSpan(t, src, "class="))}

	edits, err := classname.Plan(context.Background(), src, nodes, options(80), classname.RewrapFunc(greedy))
	require.NoError(t, err)
	assert.Empty(t, edits)
}

func TestRewrite_CollapsesWhitespace(t *testing.T) {
	t.Parallel()

	src := "<div class=\"  flex\n\t items-center   gap-2 \"></div>"
	nodes := []classname.ClassNameNode{attribute(quotedSpan(t, src, "class="))}

	assert.Equal(t, `<div class="flex items-center gap-2"></div>`, rewrite(t, src, nodes, options(80)))
}

func TestRewrite_TernaryOperands(t *testing.T) {
	t.Parallel()

	src := `<div className={cond ? "short" : "also short"} />`
	nodes := []classname.ClassNameNode{
		{Kind: classname.KindPreserving, Span: spanOf(t, src, `cond ? "short" : "also short"`)},
		{Kind: classname.KindExpression, Span: spanOf(t, src, `"short"`), Delimiter: classname.DelimiterDouble, TernaryOperand: true},
		{Kind: classname.KindExpression, Span: spanOf(t, src, `"also short"`), Delimiter: classname.DelimiterDouble, TernaryOperand: true},
	}

	opts := options(80)
	opts.Dialect = classname.DialectJSX
	opts.PreferredQuote = classname.QuoteSingle

	assert.Equal(t, `<div className={cond ? 'short' : 'also short'} />`, rewrite(t, src, nodes, opts))
}

// templateNodes annotates a backtick literal holding one ternary frame with
// two double-quoted operands.
func templateNodes(t *testing.T, src string) []classname.ClassNameNode {
	t.Helper()
	start := strings.IndexByte(src, '`')
	end := strings.LastIndexByte(src, '`') + 1
	return []classname.ClassNameNode{
		{Kind: classname.KindExpression, Span: classname.Span{Start: start, End: end}, Delimiter: classname.DelimiterBacktick},
		{Kind: classname.KindPreserving, Span: spanOf(t, src, `cond ? "x" : "y"`)},
		{Kind: classname.KindExpression, Span: spanOf(t, src, `"x"`), Delimiter: classname.DelimiterDouble, TernaryOperand: true},
		{Kind: classname.KindExpression, Span: spanOf(t, src, `"y"`), Delimiter: classname.DelimiterDouble, TernaryOperand: true},
	}
}

func TestRewrite_NestedFrame(t *testing.T) {
	t.Parallel()

	src := "const c = `aaa ${ cond ? \"x\" : \"y\" } bbb`;\n"
	want := "const c = `aaa ${\n  cond ? \"x\" : \"y\" }\n  bbb`;\n"

	got := rewrite(t, src, templateNodes(t, src), options(20))
	assert.Equal(t, want, got)

	// A second pass over the output is a no-op.
	edits, err := classname.Plan(context.Background(), got, templateNodes(t, got), options(20), classname.RewrapFunc(greedy))
	require.NoError(t, err)
	assert.Empty(t, edits)
}

func TestRewrite_SyntaxRewrite(t *testing.T) {
	t.Parallel()

	src := `<div className="` + classes(1, 25) + `" />`
	n := attribute(quotedSpan(t, src, "className="))
	n.OnTagLine = true
	nodes := []classname.ClassNameNode{n}

	opts := options(40)
	opts.Dialect = classname.DialectJSX
	opts.AllowSyntaxRewrite = true

	want := "<div className={`" + classes(1, 10) +
		"\n    " + classes(11, 19) +
		"\n    " + classes(20, 25) + "`} />"
	assert.Equal(t, want, rewrite(t, src, nodes, opts))

	// Without the rewrite the attribute keeps its quotes.
	opts.AllowSyntaxRewrite = false
	got := rewrite(t, src, nodes, opts)
	assert.True(t, strings.HasPrefix(got, `<div className="c01`))
	assert.True(t, strings.HasSuffix(got, `c25" />`))
}

func TestRewrite_PreserveDelimiter(t *testing.T) {
	t.Parallel()

	src := "x = '" + strings.ReplaceAll(classes(1, 20), " ", "   ") + "';"
	nodes := []classname.ClassNameNode{{
		Kind:              classname.KindExpression,
		Span:              quotedSpan(t, src, "x = "),
		Delimiter:         classname.DelimiterSingle,
		PreserveDelimiter: true,
	}}

	assert.Equal(t, "x = '"+classes(1, 20)+"';", rewrite(t, src, nodes, options(30)))
}

func TestRewrite_VueBound(t *testing.T) {
	t.Parallel()

	opts := options(40)
	opts.Dialect = classname.DialectVue

	t.Run("multi-line becomes template", func(t *testing.T) {
		t.Parallel()

		src := "  <div :class=\"'" + classes(1, 20) + "'\"></div>"
		nodes := []classname.ClassNameNode{{
			Kind:           classname.KindExpression,
			Span:           quotedSpan(t, src, `:class="`),
			Delimiter:      classname.DelimiterSingle,
			BoundAttribute: true,
		}}

		want := "  <div :class=\"`" + classes(1, 10) +
			"\n      " + classes(11, 19) +
			"\n      " + classes(20, 20) + "`\"></div>"
		assert.Equal(t, want, rewrite(t, src, nodes, opts))
	})

	t.Run("short template becomes single quoted", func(t *testing.T) {
		t.Parallel()

		src := "<div :class=\"`a b`\"></div>"
		nodes := []classname.ClassNameNode{{
			Kind:           classname.KindExpression,
			Span:           quotedSpan(t, src, `:class="`),
			Delimiter:      classname.DelimiterBacktick,
			BoundAttribute: true,
		}}

		assert.Equal(t, `<div :class="'a b'"></div>`, rewrite(t, src, nodes, opts))
	})
}

func TestRewrite_AngularBoundStaysOnOneLine(t *testing.T) {
	t.Parallel()

	src := "<div [ngClass]=\"'" + classes(1, 20) + "'\"></div>"
	nodes := []classname.ClassNameNode{{
		Kind:           classname.KindExpression,
		Span:           quotedSpan(t, src, `[ngClass]="`),
		Delimiter:      classname.DelimiterSingle,
		BoundAttribute: true,
	}}

	opts := options(40)
	opts.Dialect = classname.DialectAngular

	assert.Equal(t, src, rewrite(t, src, nodes, opts))
}

func TestRewrite_EndingPositions(t *testing.T) {
	t.Parallel()

	src := `  <span class="` + classes(1, 20) + `"></span>`

	tests := []struct {
		name   string
		ending classname.EndingPosition
		want   string
	}{
		{
			name:   "absolute",
			ending: classname.EndingAbsolute,
			want: `  <span class="` + classes(1, 6) +
				"\n  " + classes(7, 15) +
				"\n  " + classes(16, 20) + `"></span>`,
		},
		{
			name:   "absolute with indent",
			ending: classname.EndingAbsoluteWithIndent,
			want: `  <span class="` + classes(1, 6) +
				"\n      " + classes(7, 14) +
				"\n      " + classes(15, 20) + `"></span>`,
		},
		{
			name:   "relative",
			ending: classname.EndingRelative,
			want: `  <span class="` + classes(1, 10) +
				"\n      " + classes(11, 19) +
				"\n      " + classes(20, 20) + `"></span>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n := attribute(quotedSpan(t, src, "class="))
			n.OnTagLine = true
			opts := options(40)
			opts.EndingPosition = tt.ending

			assert.Equal(t, tt.want, rewrite(t, src, []classname.ClassNameNode{n}, opts))
		})
	}
}

func TestRewrite_LaterOccurrencesSeeEarlierEdits(t *testing.T) {
	t.Parallel()

	src := "x = f('" + classes(1, 12) + "', '" + classes(13, 24) + "');"
	first := quotedSpan(t, src, "f(")
	second := quotedSpan(t, src, classes(12, 12)+"', ")
	nodes := []classname.ClassNameNode{
		{Kind: classname.KindExpression, Span: second, Delimiter: classname.DelimiterSingle},
		{Kind: classname.KindExpression, Span: first, Delimiter: classname.DelimiterSingle},
	}

	want := "x = f(`" + classes(1, 7) + "\n  " + classes(8, 12) + "`, `" +
		classes(13, 19) + "\n    " + classes(20, 24) + "`);"
	assert.Equal(t, want, rewrite(t, src, nodes, options(30)))
}

func TestRewrite_UseTabs(t *testing.T) {
	t.Parallel()

	src := "\t<div class=\"" + classes(1, 20) + "\"></div>"
	opts := options(40)
	opts.UseTabs = true

	got := rewrite(t, src, []classname.ClassNameNode{attribute(quotedSpan(t, src, "class="))}, opts)
	assert.Contains(t, got, "\n\t\t"+classes(11, 11))
}

func TestRewrite_Deterministic(t *testing.T) {
	t.Parallel()

	src := "const c = `aaa ${ cond ? \"x\" : \"y\" } bbb`;\n"
	first := rewrite(t, src, templateNodes(t, src), options(20))
	for range 5 {
		assert.Equal(t, first, rewrite(t, src, templateNodes(t, src), options(20)))
	}
}

func TestRewrite_Errors(t *testing.T) {
	t.Parallel()

	src := `<div class="a b"></div>`
	valid := []classname.ClassNameNode{attribute(quotedSpan(t, src, "class="))}
	boom := errors.New("boom")

	tests := []struct {
		name    string
		nodes   []classname.ClassNameNode
		opts    func(*classname.Options)
		rw      classname.Rewrapper
		noRW    bool
		wantErr error
	}{
		{
			name:    "span past end",
			nodes:   []classname.ClassNameNode{attribute(classname.Span{Start: 11, End: 99})},
			wantErr: classname.ErrMalformedSpan,
		},
		{
			name:    "empty span",
			nodes:   []classname.ClassNameNode{attribute(classname.Span{Start: 5, End: 5})},
			wantErr: classname.ErrMalformedSpan,
		},
		{
			name:    "negative start",
			nodes:   []classname.ClassNameNode{attribute(classname.Span{Start: -1, End: 5})},
			wantErr: classname.ErrMalformedSpan,
		},
		{
			name:    "zero width",
			nodes:   valid,
			opts:    func(o *classname.Options) { o.TargetWidth = 0 },
			wantErr: classname.ErrInvalidOptions,
		},
		{
			name:    "unknown dialect",
			nodes:   valid,
			opts:    func(o *classname.Options) { o.Dialect = "xml" },
			wantErr: classname.ErrInvalidOptions,
		},
		{
			name:    "nil rewrapper",
			nodes:   valid,
			noRW:    true,
			wantErr: classname.ErrInvalidOptions,
		},
		{
			name:  "callback failure",
			nodes: valid,
			rw: classname.RewrapFunc(func(context.Context, string, classname.WrapOptions) (string, error) {
				return "", boom
			}),
			wantErr: boom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := options(80)
			if tt.opts != nil {
				tt.opts(&opts)
			}
			rw := tt.rw
			if rw == nil && !tt.noRW {
				rw = classname.RewrapFunc(greedy)
			}

			_, err := classname.Rewrite(context.Background(), src, tt.nodes, opts, rw)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// mangle is a rewrapper that destroys every non-ASCII character.
func mangle(ctx context.Context, text string, opts classname.WrapOptions) (string, error) {
	out, err := greedy(ctx, text, opts)
	return strings.Map(func(r rune) rune {
		if r > 127 {
			return 'x'
		}
		return r
	}, out), err
}

func TestRewrite_LostPlaceholder(t *testing.T) {
	t.Parallel()

	src := "const c = `aaa ${ cond ? \"x\" : \"y\" } bbb`;\n"

	t.Run("strict", func(t *testing.T) {
		t.Parallel()

		opts := options(20)
		opts.Strict = true
		_, err := classname.Rewrite(context.Background(), src, templateNodes(t, src), opts, classname.RewrapFunc(mangle))
		require.ErrorIs(t, err, classname.ErrPlaceholderNotFound)

		var phErr *classname.PlaceholderError
		require.ErrorAs(t, err, &phErr)
		assert.Equal(t, spanOf(t, src, `cond ? "x" : "y"`), phErr.Span)
	})

	t.Run("lenient keeps the occurrence", func(t *testing.T) {
		t.Parallel()

		got, err := classname.Rewrite(context.Background(), src, templateNodes(t, src), options(20), classname.RewrapFunc(mangle))
		require.NoError(t, err)
		assert.Equal(t, src, got)
		assert.Contains(t, got, `cond ? "x" : "y"`)
	})
}

func TestRewrite_Async(t *testing.T) {
	t.Parallel()

	src := "<div\n    class=\"" + classes(1, 30) + "\"\n></div>\n"
	nodes := []classname.ClassNameNode{attribute(quotedSpan(t, src, "class="))}

	async := classname.AsyncRewrapFunc(func(ctx context.Context, text string, opts classname.WrapOptions) <-chan classname.RewrapResult {
		ch := make(chan classname.RewrapResult, 1)
		go func() {
			out, err := greedy(ctx, text, opts)
			ch <- classname.RewrapResult{Text: out, Err: err}
		}()
		return ch
	})

	got, err := classname.Rewrite(context.Background(), src, nodes, options(60), async)
	require.NoError(t, err)
	assert.Equal(t, rewrite(t, src, nodes, options(60)), got)
}

func TestRewrite_AsyncFailures(t *testing.T) {
	t.Parallel()

	src := `<div class="a b"></div>`
	nodes := []classname.ClassNameNode{attribute(quotedSpan(t, src, "class="))}

	t.Run("closed channel", func(t *testing.T) {
		t.Parallel()

		closed := classname.AsyncRewrapFunc(func(context.Context, string, classname.WrapOptions) <-chan classname.RewrapResult {
			ch := make(chan classname.RewrapResult)
			close(ch)
			return ch
		})
		_, err := classname.Rewrite(context.Background(), src, nodes, options(80), closed)
		require.Error(t, err)
	})

	t.Run("canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		never := classname.AsyncRewrapFunc(func(context.Context, string, classname.WrapOptions) <-chan classname.RewrapResult {
			return make(chan classname.RewrapResult)
		})
		_, err := classname.Rewrite(ctx, src, nodes, options(80), never)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestRewrite_CanceledBeforeFirstOccurrence(t *testing.T) {
	t.Parallel()

	src := `<div class="a   b"></div>`
	nodes := []classname.ClassNameNode{attribute(quotedSpan(t, src, "class="))}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	rw := classname.RewrapFunc(func(ctx context.Context, text string, opts classname.WrapOptions) (string, error) {
		called = true
		return greedy(ctx, text, opts)
	})
	edits, err := classname.Plan(ctx, src, nodes, options(80), rw)
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, edits)
	assert.False(t, called)
}

func TestRewrite_OverlappingRootsSkipped(t *testing.T) {
	t.Parallel()

	src := `<div class="a   b"></div>`
	span := quotedSpan(t, src, "class=")
	overlap := classname.ClassNameNode{
		Kind: classname.KindPreserving,
		Span: classname.Span{Start: span.Start + 3, End: len(src)},
	}
	nodes := []classname.ClassNameNode{attribute(span), overlap}

	assert.Equal(t, `<div class="a b"></div>`, rewrite(t, src, nodes, options(80)))
}

func TestPlan_EditsInSourceCoordinates(t *testing.T) {
	t.Parallel()

	src := `<a class="x  y"></a><b class="p  q"></b>`
	nodes := []classname.ClassNameNode{
		attribute(quotedSpan(t, src, "<a class=")),
		attribute(quotedSpan(t, src, "<b class=")),
	}

	edits, err := classname.Plan(context.Background(), src, nodes, options(80), classname.RewrapFunc(greedy))
	require.NoError(t, err)
	require.Len(t, edits, 2)
	assert.Equal(t, nodes[0].Span.Start, edits[0].StartOffset)
	assert.Equal(t, `"x y"`, edits[0].NewText)
	assert.Equal(t, nodes[1].Span.Start, edits[1].StartOffset)
	assert.Equal(t, `"p q"`, edits[1].NewText)
}

// literal annotates the literal quoted right after marker, taking its
// delimiter from the text.
func literal(t *testing.T, src, marker string, kind classname.Kind) classname.ClassNameNode {
	t.Helper()
	span := quotedSpan(t, src, marker)
	return classname.ClassNameNode{Kind: kind, Span: span, Delimiter: classname.DelimiterOf(src[span.Start])}
}

// ternaryNodes annotates a "cond ? a : b" frame and both of its operands.
func ternaryNodes(t *testing.T, src string) []classname.ClassNameNode {
	t.Helper()
	first := literal(t, src, "cond ? ", classname.KindExpression)
	second := literal(t, src, " : ", classname.KindExpression)
	first.TernaryOperand, second.TernaryOperand = true, true
	frame := classname.Span{Start: first.Span.Start - len("cond ? "), End: second.Span.End}
	return []classname.ClassNameNode{{Kind: classname.KindPreserving, Span: frame}, first, second}
}

// mustacheNodes annotates a class attribute holding a {cond ? 'x' : 'y'}
// frame between its classes.
func mustacheNodes(t *testing.T, src string) []classname.ClassNameNode {
	t.Helper()
	x := literal(t, src, "cond ? ", classname.KindExpression)
	y := literal(t, src, " : ", classname.KindExpression)
	x.TernaryOperand, y.TernaryOperand = true, true
	return []classname.ClassNameNode{
		attribute(quotedSpan(t, src, "class=")),
		{Kind: classname.KindPreserving, Span: spanOf(t, src, "cond ? 'x' : 'y'")},
		x, y,
	}
}

// applyNodes annotates the unquoted class list of an @apply rule.
func applyNodes(t *testing.T, src string) []classname.ClassNameNode {
	t.Helper()
	start := strings.Index(src, "@apply ") + len("@apply ")
	end := strings.IndexByte(src, ';')
	require.Greater(t, end, start)
	return []classname.ClassNameNode{{
		Kind:      classname.KindUnknown,
		Span:      classname.Span{Start: start, End: end},
		Delimiter: classname.DelimiterNone,
	}}
}

func TestRewrite_TernaryOperandsBothWrap(t *testing.T) {
	t.Parallel()

	src := `  <div className={cond ? '` + classes(1, 14) + `' : '` + classes(20, 34) + `'} />`
	opts := options(40)
	opts.Dialect = classname.DialectJSX
	opts.PreferredQuote = classname.QuoteSingle

	// The second operand continues from the last line of the first one.
	want := "  <div className={cond ? `" + classes(1, 10) +
		"\n      " + classes(11, 14) + "` : `" + classes(20, 29) +
		"\n          " + classes(30, 34) + "`} />"
	got := rewrite(t, src, ternaryNodes(t, src), opts)
	assert.Equal(t, want, got)

	edits, err := classname.Plan(context.Background(), got, ternaryNodes(t, got), opts, classname.RewrapFunc(greedy))
	require.NoError(t, err)
	assert.Empty(t, edits)
}

func TestRewrite_UnquotedLiteral(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   string
		width int
		want  string
	}{
		{
			name:  "collapses whitespace",
			src:   "@apply a   b   c;",
			width: 80,
			want:  "@apply a b c;",
		},
		{
			name:  "wraps without quotes",
			src:   ".btn { @apply " + classes(1, 12) + "; }",
			width: 30,
			want:  ".btn { @apply " + classes(1, 7) + "\n  " + classes(8, 12) + "; }",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := rewrite(t, tt.src, applyNodes(t, tt.src), options(tt.width))
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "`")
			assert.NotContains(t, got, `"`)
		})
	}
}

func TestRewrite_AttributeWithMustacheKeepsQuotes(t *testing.T) {
	t.Parallel()

	src := `<div class="` + classes(1, 12) + ` {cond ? 'x' : 'y'} ` + classes(13, 20) + `"></div>`

	for _, dialect := range []classname.Dialect{classname.DialectSvelte, classname.DialectAstro} {
		t.Run(string(dialect), func(t *testing.T) {
			t.Parallel()

			opts := options(40)
			opts.Dialect = dialect
			opts.AllowSyntaxRewrite = true

			want := `<div class="` + classes(1, 10) +
				"\n  " + classes(11, 12) + " {cond ? 'x' : 'y'} " + classes(13, 15) +
				"\n  " + classes(16, 20) + `"></div>`
			got := rewrite(t, src, mustacheNodes(t, src), opts)
			assert.Equal(t, want, got)
			assert.NotContains(t, got, "{`")
		})
	}
}

func TestRewrite_SecondPassIsNoOp(t *testing.T) {
	t.Parallel()

	jsx := options(40)
	jsx.Dialect = classname.DialectJSX
	jsx.PreferredQuote = classname.QuoteSingle

	vue := options(40)
	vue.Dialect = classname.DialectVue

	svelte := options(40)
	svelte.Dialect = classname.DialectSvelte
	svelte.AllowSyntaxRewrite = true

	withEnding := func(ending classname.EndingPosition) classname.Options {
		opts := options(40)
		opts.EndingPosition = ending
		return opts
	}
	onTagLine := func(t *testing.T, src string) []classname.ClassNameNode {
		t.Helper()
		n := attribute(quotedSpan(t, src, "class="))
		n.OnTagLine = true
		return []classname.ClassNameNode{n}
	}
	spanned := `  <span class="` + classes(1, 20) + `"></span>`

	tests := []struct {
		name  string
		src   string
		nodes func(t *testing.T, src string) []classname.ClassNameNode
		opts  classname.Options
	}{
		{
			name: "attribute",
			src:  "<div\n    class=\"" + classes(1, 30) + "\"\n></div>\n",
			nodes: func(t *testing.T, src string) []classname.ClassNameNode {
				t.Helper()
				return []classname.ClassNameNode{attribute(quotedSpan(t, src, "class="))}
			},
			opts: options(60),
		},
		{name: "absolute ending", src: spanned, nodes: onTagLine, opts: withEnding(classname.EndingAbsolute)},
		{name: "absolute with indent ending", src: spanned, nodes: onTagLine, opts: withEnding(classname.EndingAbsoluteWithIndent)},
		{name: "relative ending", src: spanned, nodes: onTagLine, opts: withEnding(classname.EndingRelative)},
		{
			name:  "ternary operands",
			src:   `  <div className={cond ? '` + classes(1, 14) + `' : '` + classes(20, 34) + `'} />`,
			nodes: ternaryNodes,
			opts:  jsx,
		},
		{
			name: "vue bound",
			src:  "  <div :class=\"'" + classes(1, 20) + "'\"></div>",
			nodes: func(t *testing.T, src string) []classname.ClassNameNode {
				t.Helper()
				n := literal(t, src, `:class="`, classname.KindExpression)
				n.BoundAttribute = true
				return []classname.ClassNameNode{n}
			},
			opts: vue,
		},
		{
			name:  "nested template",
			src:   "const c = `aaa ${ cond ? \"x\" : \"y\" } bbb`;\n",
			nodes: templateNodes,
			opts:  options(20),
		},
		{
			name:  "attribute with mustache",
			src:   `<div class="` + classes(1, 12) + ` {cond ? 'x' : 'y'} ` + classes(13, 20) + `"></div>`,
			nodes: mustacheNodes,
			opts:  svelte,
		},
		{
			name:  "unquoted",
			src:   ".btn { @apply " + classes(1, 12) + "; }",
			nodes: applyNodes,
			opts:  options(30),
		},
		{
			name: "sibling occurrences",
			src:  "x = f('" + classes(1, 12) + "', '" + classes(13, 24) + "');",
			nodes: func(t *testing.T, src string) []classname.ClassNameNode {
				t.Helper()
				return []classname.ClassNameNode{
					literal(t, src, "f(", classname.KindExpression),
					literal(t, src, ", ", classname.KindExpression),
				}
			},
			opts: options(30),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			first := rewrite(t, tt.src, tt.nodes(t, tt.src), tt.opts)
			require.NotEqual(t, tt.src, first, "first pass changed nothing")

			edits, err := classname.Plan(context.Background(), first, tt.nodes(t, first), tt.opts, classname.RewrapFunc(greedy))
			require.NoError(t, err)
			assert.Empty(t, edits)
		})
	}
}
