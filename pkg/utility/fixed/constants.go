package fixed

var (
	Zero    = New(0, 0)
	One     = New(1, 0)
	Hundred = New(100, 0)
)
