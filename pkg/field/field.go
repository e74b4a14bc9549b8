// Package field provides dense rectangular scalar sample grids.
//
// Grids store one floating point sample per integer grid coordinate,
// in row-major order with x varying fastest. Index space has unit
// spacing; mapping indices to world coordinates is the caller's
// concern. The extraction algorithms in pkg/levelset treat grids as
// read-only.
package field

// Grid2 is an ny×nx grid of scalar samples.
type Grid2 struct {
	Nx, Ny int
	// Data holds Nx*Ny samples, row-major, x fastest:
	// the sample at (ix,iy) is Data[iy*Nx+ix].
	Data []float64
}

// NewGrid2 allocates a zero-filled nx×ny grid.
func NewGrid2(nx, ny int) *Grid2 {
	return &Grid2{Nx: nx, Ny: ny, Data: make([]float64, nx*ny)}
}

// Grid2FromFunc builds a grid by evaluating f at every sample index.
func Grid2FromFunc(nx, ny int, f func(ix, iy int) float64) *Grid2 {
	g := NewGrid2(nx, ny)
	for iy := 0; iy < ny; iy++ {
		for ix := 0; ix < nx; ix++ {
			g.Data[iy*nx+ix] = f(ix, iy)
		}
	}
	return g
}

// At returns the sample at (ix,iy). Bounds are not checked.
func (g *Grid2) At(ix, iy int) float64 { return g.Data[iy*g.Nx+ix] }

// Set stores v at (ix,iy). Bounds are not checked.
func (g *Grid2) Set(ix, iy int, v float64) { g.Data[iy*g.Nx+ix] = v }

// Fill sets every sample to v.
func (g *Grid2) Fill(v float64) {
	for i := range g.Data {
		g.Data[i] = v
	}
}

// Grid3 is an nz×ny×nx volume of scalar samples.
type Grid3 struct {
	Nx, Ny, Nz int
	// Data holds Nx*Ny*Nz samples, row-major, x fastest:
	// the sample at (ix,iy,iz) is Data[(iz*Ny+iy)*Nx+ix].
	Data []float64
}

// NewGrid3 allocates a zero-filled nx×ny×nz volume.
func NewGrid3(nx, ny, nz int) *Grid3 {
	return &Grid3{Nx: nx, Ny: ny, Nz: nz, Data: make([]float64, nx*ny*nz)}
}

// Grid3FromFunc builds a volume by evaluating f at every sample index.
func Grid3FromFunc(nx, ny, nz int, f func(ix, iy, iz int) float64) *Grid3 {
	g := NewGrid3(nx, ny, nz)
	for iz := 0; iz < nz; iz++ {
		for iy := 0; iy < ny; iy++ {
			for ix := 0; ix < nx; ix++ {
				g.Data[(iz*ny+iy)*nx+ix] = f(ix, iy, iz)
			}
		}
	}
	return g
}

// At returns the sample at (ix,iy,iz). Bounds are not checked.
func (g *Grid3) At(ix, iy, iz int) float64 { return g.Data[(iz*g.Ny+iy)*g.Nx+ix] }

// Set stores v at (ix,iy,iz). Bounds are not checked.
func (g *Grid3) Set(ix, iy, iz int, v float64) { g.Data[(iz*g.Ny+iy)*g.Nx+ix] = v }

// Fill sets every sample to v.
func (g *Grid3) Fill(v float64) {
	for i := range g.Data {
		g.Data[i] = v
	}
}

// Slab returns a view of the sample planes z0 ≤ iz ≤ z1. The view
// shares the receiver's backing array; it must be treated as
// read-only, like any grid handed to an extractor.
func (g *Grid3) Slab(z0, z1 int) *Grid3 {
	plane := g.Nx * g.Ny
	return &Grid3{
		Nx:   g.Nx,
		Ny:   g.Ny,
		Nz:   z1 - z0 + 1,
		Data: g.Data[z0*plane : (z1+1)*plane],
	}
}

// Rows returns a view of the sample rows y0 ≤ iy ≤ y1 of a 2D grid.
// The view shares the receiver's backing array.
func (g *Grid2) Rows(y0, y1 int) *Grid2 {
	return &Grid2{
		Nx:   g.Nx,
		Ny:   y1 - y0 + 1,
		Data: g.Data[y0*g.Nx : (y1+1)*g.Nx],
	}
}
