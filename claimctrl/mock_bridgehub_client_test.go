package claimctrl

import (
	"context"
	"math/big"

	"github.com/stretchr/testify/mock"
)

// bridgehubClientMock is a mock type for the BridgehubClient type
type bridgehubClientMock struct {
	mock.Mock
}

type bridgehubClientMock_Expecter struct {
	mock *mock.Mock
}

func (_m *bridgehubClientMock) EXPECT() *bridgehubClientMock_Expecter {
	return &bridgehubClientMock_Expecter{mock: &_m.Mock}
}

// Close provides a mock function with given fields:
func (_m *bridgehubClientMock) Close() {
	_m.Called()
}

// bridgehubClientMock_Close_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Close'
type bridgehubClientMock_Close_Call struct {
	*mock.Call
}

// Close is a helper method to define mock.On call
func (_e *bridgehubClientMock_Expecter) Close() *bridgehubClientMock_Close_Call {
	return &bridgehubClientMock_Close_Call{Call: _e.mock.On("Close")}
}

func (_c *bridgehubClientMock_Close_Call) Return() *bridgehubClientMock_Close_Call {
	_c.Call.Return()
	return _c
}

// L2TransactionBaseCost provides a mock function with given fields: ctx, chainID, gasPrice, l2GasLimit, gasPerPubdata
func (_m *bridgehubClientMock) L2TransactionBaseCost(ctx context.Context, chainID *big.Int, gasPrice *big.Int, l2GasLimit *big.Int, gasPerPubdata *big.Int) (*big.Int, error) {
	ret := _m.Called(ctx, chainID, gasPrice, l2GasLimit, gasPerPubdata)

	var r0 *big.Int
	if rf, ok := ret.Get(0).(func(context.Context, *big.Int, *big.Int, *big.Int, *big.Int) *big.Int); ok {
		r0 = rf(ctx, chainID, gasPrice, l2GasLimit, gasPerPubdata)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*big.Int)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *big.Int, *big.Int, *big.Int, *big.Int) error); ok {
		r1 = rf(ctx, chainID, gasPrice, l2GasLimit, gasPerPubdata)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// bridgehubClientMock_L2TransactionBaseCost_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'L2TransactionBaseCost'
type bridgehubClientMock_L2TransactionBaseCost_Call struct {
	*mock.Call
}

// L2TransactionBaseCost is a helper method to define mock.On call
func (_e *bridgehubClientMock_Expecter) L2TransactionBaseCost(ctx interface{}, chainID interface{}, gasPrice interface{}, l2GasLimit interface{}, gasPerPubdata interface{}) *bridgehubClientMock_L2TransactionBaseCost_Call {
	return &bridgehubClientMock_L2TransactionBaseCost_Call{Call: _e.mock.On("L2TransactionBaseCost", ctx, chainID, gasPrice, l2GasLimit, gasPerPubdata)}
}

func (_c *bridgehubClientMock_L2TransactionBaseCost_Call) Return(cost *big.Int, err error) *bridgehubClientMock_L2TransactionBaseCost_Call {
	_c.Call.Return(cost, err)
	return _c
}

type mockConstructorTestingTnewBridgehubClientMock interface {
	mock.TestingT
	Cleanup(func())
}

// newBridgehubClientMock creates a new instance of bridgehubClientMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func newBridgehubClientMock(t mockConstructorTestingTnewBridgehubClientMock) *bridgehubClientMock {
	m := &bridgehubClientMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
