package campaign

import (
	"github.com/dhababook/restro-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// scriptedRandom is a RandomSource with pre-scripted outcomes so tests can
// force exact synthesizer and allocator results.
type scriptedRandom struct {
	ints   []int
	floats []float64
	perm   []int
}

func (r *scriptedRandom) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

func (r *scriptedRandom) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRandom) Perm(n int) []int {
	if len(r.perm) == n {
		out := make([]int, n)
		copy(out, r.perm)
		return out
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func testCustomer(name, phone string, totalOrders int, creditBalance float64) models.Customer {
	return models.Customer{
		ID:            primitive.NewObjectID(),
		Name:          name,
		Phone:         phone,
		TotalOrders:   totalOrders,
		CreditBalance: creditBalance,
	}
}
