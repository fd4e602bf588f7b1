//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package user

import "context"

type DBRepo interface {
	UpdateUserNickname(ctx context.Context, userID, newNickname string) error
}
