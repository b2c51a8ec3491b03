package sqlite

import "context"

func (s *SnapshotStore) Exec(ctx context.Context, query string) error {
	_, err := s.db.ExecContext(ctx, query)
	return err
}
